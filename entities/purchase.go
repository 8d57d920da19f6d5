package entities

import (
	"Go-Shopping-Inventory/domain"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	TableFoodPurchase     = "CompraComida"
	TableCleaningPurchase = "CompraLimpieza"
	TableMiscPurchase     = "CompraVarios"
	TableTask             = "Tarea"
)

// Record is implemented by the pointer type of every purchase category.
type Record interface {
	TableName() string
	Base() *Purchase
	Validate() error
}

// SupermarketHolder is implemented by categories that record where to buy.
type SupermarketHolder interface {
	GetSupermarket() string
	SetSupermarket(supermarket string) error
}

// Purchase holds the columns shared by the three purchase tables.
type Purchase struct {
	ID          int    `gorm:"column:IdUnico;primaryKey;autoIncrement" json:"id"`
	ProductName string `gorm:"column:NombreProducto;size:255;not null" json:"product_name"`
	Description string `gorm:"column:Descripcion;size:455;not null" json:"description"`
	HasPhoto    bool   `gorm:"column:Foto;not null" json:"has_photo"`
	PhotoNumber *int   `gorm:"column:NumeroUnicoFoto;uniqueIndex" json:"photo_number"`
	Quantity    int    `gorm:"column:Cantidad;not null" json:"quantity"`
	Completed   bool   `gorm:"column:Realizado;not null" json:"completed"`
}

func newPurchase(productName, description string, hasPhoto bool, photoNumber *int, quantity int, completed bool) (Purchase, error) {
	p := Purchase{Completed: completed}
	if err := p.SetProductName(productName); err != nil {
		return Purchase{}, err
	}
	if err := p.SetDescription(description); err != nil {
		return Purchase{}, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return Purchase{}, err
	}
	if err := p.SetPhoto(hasPhoto, photoNumber); err != nil {
		return Purchase{}, err
	}
	return p, nil
}

func (p *Purchase) Base() *Purchase {
	return p
}

func (p *Purchase) SetProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return domain.ErrBlankProductName
	}
	p.ProductName = productName
	return nil
}

func (p *Purchase) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.ErrBlankDescription
	}
	p.Description = description
	return nil
}

func (p *Purchase) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	p.Quantity = quantity
	return nil
}

// SetPhoto updates the photo flag and number together. Turning the flag off
// always drops the number; turning it on requires a positive number.
func (p *Purchase) SetPhoto(hasPhoto bool, photoNumber *int) error {
	if !hasPhoto {
		p.HasPhoto = false
		p.PhotoNumber = nil
		return nil
	}
	if photoNumber == nil || *photoNumber <= 0 {
		return domain.ErrInvalidPhotoNumber
	}
	n := *photoNumber
	p.HasPhoto = true
	p.PhotoNumber = &n
	return nil
}

// MarkPhotoPending flags a photo whose number is assigned when the row is
// saved.
func (p *Purchase) MarkPhotoPending() {
	p.HasPhoto = true
	p.PhotoNumber = nil
}

// PhotoPending reports a flagged photo still waiting for its number.
func (p *Purchase) PhotoPending() bool {
	return p.HasPhoto && p.PhotoNumber == nil
}

func (p *Purchase) SetCompleted(completed bool) {
	p.Completed = completed
}

func (p *Purchase) Validate() error {
	if strings.TrimSpace(p.ProductName) == "" {
		return domain.ErrBlankProductName
	}
	if strings.TrimSpace(p.Description) == "" {
		return domain.ErrBlankDescription
	}
	if p.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if p.HasPhoto != (p.PhotoNumber != nil) {
		return domain.ErrInvalidPhotoNumber
	}
	if p.PhotoNumber != nil && *p.PhotoNumber <= 0 {
		return domain.ErrInvalidPhotoNumber
	}
	return nil
}

func (p *Purchase) String() string {
	photo := "none"
	if p.PhotoNumber != nil {
		photo = fmt.Sprintf("#%d", *p.PhotoNumber)
	}
	return fmt.Sprintf("%q x%d (%s, photo %s, completed=%t)", p.ProductName, p.Quantity, p.Description, photo, p.Completed)
}

func (p *Purchase) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

type FoodPurchase struct {
	Purchase
}

func NewFoodPurchase(productName, description string, hasPhoto bool, photoNumber *int, quantity int, completed bool) (*FoodPurchase, error) {
	p, err := newPurchase(productName, description, hasPhoto, photoNumber, quantity, completed)
	if err != nil {
		return nil, err
	}
	return &FoodPurchase{Purchase: p}, nil
}

func (FoodPurchase) TableName() string {
	return TableFoodPurchase
}

type CleaningPurchase struct {
	Purchase
	Supermarket string `gorm:"column:SuperMercado;size:255;not null" json:"supermarket"`
}

func NewCleaningPurchase(productName, description string, hasPhoto bool, photoNumber *int, quantity int, completed bool, supermarket string) (*CleaningPurchase, error) {
	p, err := newPurchase(productName, description, hasPhoto, photoNumber, quantity, completed)
	if err != nil {
		return nil, err
	}
	c := &CleaningPurchase{Purchase: p}
	if err := c.SetSupermarket(supermarket); err != nil {
		return nil, err
	}
	return c, nil
}

func (CleaningPurchase) TableName() string {
	return TableCleaningPurchase
}

func (c *CleaningPurchase) GetSupermarket() string {
	return c.Supermarket
}

func (c *CleaningPurchase) SetSupermarket(supermarket string) error {
	return setSupermarket(&c.Supermarket, supermarket)
}

func (c *CleaningPurchase) Validate() error {
	if err := c.Purchase.Validate(); err != nil {
		return err
	}
	return validateSupermarket(c.Supermarket)
}

func (c *CleaningPurchase) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}

type MiscPurchase struct {
	Purchase
	Supermarket string `gorm:"column:SuperMercado;size:255;not null" json:"supermarket"`
}

func NewMiscPurchase(productName, description string, hasPhoto bool, photoNumber *int, quantity int, completed bool, supermarket string) (*MiscPurchase, error) {
	p, err := newPurchase(productName, description, hasPhoto, photoNumber, quantity, completed)
	if err != nil {
		return nil, err
	}
	m := &MiscPurchase{Purchase: p}
	if err := m.SetSupermarket(supermarket); err != nil {
		return nil, err
	}
	return m, nil
}

func (MiscPurchase) TableName() string {
	return TableMiscPurchase
}

func (m *MiscPurchase) GetSupermarket() string {
	return m.Supermarket
}

func (m *MiscPurchase) SetSupermarket(supermarket string) error {
	return setSupermarket(&m.Supermarket, supermarket)
}

func (m *MiscPurchase) Validate() error {
	if err := m.Purchase.Validate(); err != nil {
		return err
	}
	return validateSupermarket(m.Supermarket)
}

func (m *MiscPurchase) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}

func setSupermarket(dst *string, supermarket string) error {
	supermarket = strings.TrimSpace(supermarket)
	if err := validateSupermarket(supermarket); err != nil {
		return err
	}
	*dst = supermarket
	return nil
}

func validateSupermarket(supermarket string) error {
	if strings.TrimSpace(supermarket) == "" {
		return domain.ErrBlankSupermarket
	}
	return nil
}
