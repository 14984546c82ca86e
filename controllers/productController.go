package controllers

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate *validator.Validate = validator.New()

type ProductController struct {
	products *mongo.Collection
}

func NewProductController(products *mongo.Collection) *ProductController {
	return &ProductController{products: products}
}

func (ctl *ProductController) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if category := c.Query("category"); category != "" {
			filter["category"] = category
		}

		cursor, err := ctl.products.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing products"})
			return
		}
		var allProducts []models.Product
		if err := cursor.All(ctx, &allProducts); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allProducts)
	}
}

func (ctl *ProductController) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		productId := c.Param("product_id")
		var product models.Product
		err := ctl.products.FindOne(ctx, bson.M{"product_id": productId}).Decode(&product)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (ctl *ProductController) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&product); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		product.ID = primitive.NewObjectID()
		product.Product_id = product.ID.Hex()
		product.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		product.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

		result, err := ctl.products.InsertOne(ctx, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (ctl *ProductController) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		productId := c.Param("product_id")
		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if product.Name != "" {
			updateObj = append(updateObj, bson.E{Key: "name", Value: product.Name})
		}
		if product.Price > 0 {
			updateObj = append(updateObj, bson.E{Key: "price", Value: product.Price})
		}
		if product.Category != "" {
			updateObj = append(updateObj, bson.E{Key: "category", Value: product.Category})
		}
		if product.Description != "" {
			updateObj = append(updateObj, bson.E{Key: "description", Value: product.Description})
		}
		if product.Image != "" {
			updateObj = append(updateObj, bson.E{Key: "image", Value: product.Image})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		upsert := true
		opts := options.UpdateOptions{Upsert: &upsert}
		result, err := ctl.products.UpdateOne(
			ctx,
			bson.M{"product_id": productId},
			bson.D{{Key: "$set", Value: updateObj}},
			&opts,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (ctl *ProductController) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		productId := c.Param("product_id")
		result, err := ctl.products.DeleteOne(ctx, bson.M{"product_id": productId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
