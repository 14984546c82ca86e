package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is one key/value entry of the settings collection.
type Setting struct {
	ID         primitive.ObjectID `bson:"_id"`
	Key        string             `json:"key" bson:"key" validate:"required"`
	Value      string             `json:"value" bson:"value"`
	Updated_at time.Time          `json:"updated_at" bson:"updated_at"`
}

// Keys of the settings collection.
const (
	SettingActiveInvoiceID = "activeInvoiceId"
	SettingManagerPassword = "managerPassword"
	SettingLastCloseDate   = "lastCloseDate"
	SettingLastCloseReport = "lastDailyCloseReport"
	SettingProjectName     = "projectName"
	SettingHeaderText      = "headerText"
	SettingFooterText      = "footerText"
	SettingPrimaryColor    = "primaryColor"
	SettingSecondaryColor  = "secondaryColor"
	SettingProjectLogo     = "projectLogo"
)

// UpdatableSetting reports whether key is a presentation setting that
// clients may write directly. The active pointer, the manager password and
// the close bookkeeping keys have dedicated operations and stay off limits.
func UpdatableSetting(key string) bool {
	switch key {
	case SettingProjectName, SettingHeaderText, SettingFooterText,
		SettingPrimaryColor, SettingSecondaryColor, SettingProjectLogo:
		return true
	}
	return false
}
