package models

// ProductList is the read-only catalog of one store, loaded up front so that
// cart totals never block on I/O.
type ProductList struct {
	StoreID  string
	products []Product
	index    map[string]int
}

func NewProductList(storeID string, products []Product) *ProductList {
	l := &ProductList{
		StoreID:  storeID,
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.ProductID == "" {
			continue
		}
		if i, ok := l.index[p.ProductID]; ok {
			l.products[i] = p
			continue
		}
		l.index[p.ProductID] = len(l.products)
		l.products = append(l.products, p)
	}
	return l
}

func (l *ProductList) GetProductByID(id string) (*Product, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, &ProductNotFoundError{ProductID: id}
	}
	p := l.products[i]
	return &p, nil
}

func (l *ProductList) Products() []Product {
	out := make([]Product, len(l.products))
	copy(out, l.products)
	return out
}

func (l *ProductList) Len() int {
	return len(l.products)
}
