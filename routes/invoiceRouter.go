package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func InvoiceRoutes(incomingRoutes *gin.Engine, ctl *controllers.InvoiceController) {
	incomingRoutes.GET("/invoices", ctl.GetInvoices())
	incomingRoutes.POST("/invoices", ctl.CreateInvoice())
	incomingRoutes.GET("/invoices/active", ctl.GetActiveInvoice())
	incomingRoutes.PUT("/invoices/active", ctl.SetActiveInvoice())
	incomingRoutes.GET("/invoices/:invoice_id", ctl.GetInvoice())
	incomingRoutes.POST("/invoices/:invoice_id/items", ctl.AddProduct())
	incomingRoutes.PATCH("/invoices/:invoice_id/items", ctl.UpdateItemQuantity())
	incomingRoutes.POST("/invoices/:invoice_id/lock", ctl.LockInvoice())
	incomingRoutes.POST("/invoices/:invoice_id/unlock", ctl.UnlockInvoice())
	incomingRoutes.POST("/invoices/:invoice_id/override", ctl.PrivilegedOperation())
	incomingRoutes.POST("/invoices/:invoice_id/checkout", ctl.Checkout())
}
