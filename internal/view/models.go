package view

import "ShopLite/internal/catalog"

// Page carries the fields the layout needs on every render.
type Page struct {
	Title string
	Path  string
}

// ShopIndex is the shop listing view model. HasProducts is precomputed at
// the handler boundary; templates only test the flag, never the slice.
type ShopIndex struct {
	Page
	Products    []catalog.Product
	HasProducts bool
}

type AdminProducts struct {
	Page
	Products    []catalog.Product
	HasProducts bool
}

type ProductForm struct {
	Page
}

type NotFound struct {
	Page
}
