// Package models defines the wire-level entities exchanged with the canteen
// backend. Response structs mirror the backend's column-cased JSON keys;
// draft structs mirror the snake_case keys its create endpoints accept.
package models

// Category is a food category lookup record.
type Category struct {
	CategoryID   int    `json:"CategoryID"`
	CategoryName string `json:"CategoryName"`
	Description  string `json:"Description,omitempty"`
}

// Unit is a measurement unit lookup record.
type Unit struct {
	UnitID     int    `json:"UnitID"`
	UnitName   string `json:"UnitName"`
	UnitSymbol string `json:"UnitSymbol,omitempty"`
	UnitType   string `json:"UnitType,omitempty"`
}

// Supplier is a supplier lookup record.
type Supplier struct {
	SupplierID    int    `json:"SupplierID"`
	SupplierName  string `json:"SupplierName"`
	ContactPerson string `json:"ContactPerson,omitempty"`
	Phone         string `json:"Phone,omitempty"`
	Email         string `json:"Email,omitempty"`
	Address       string `json:"Address,omitempty"`
	IsActive      bool   `json:"IsActive,omitempty"`
}

// StaffMember is a kitchen staff lookup record.
type StaffMember struct {
	StaffID    int    `json:"StaffID"`
	StaffName  string `json:"StaffName"`
	Position   string `json:"Position,omitempty"`
	Department string `json:"Department,omitempty"`
	Email      string `json:"Email,omitempty"`
	IsActive   bool   `json:"IsActive,omitempty"`
}
