package domain

// Student is a row of the students table.
type Student struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Major          string  `json:"major"`
	GPA            float64 `json:"gpa"`
	EnrollmentDate *Date   `json:"enrollment_date"`
}

// ScanTargets implements Record.
func (s *Student) ScanTargets() []any {
	return []any{&s.ID, &s.Name, &s.Email, &s.Major, &s.GPA, &s.EnrollmentDate}
}

// Product is a row of the products table.
type Product struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Description string  `json:"description"`
}

// ScanTargets implements Record.
func (p *Product) ScanTargets() []any {
	return []any{&p.ID, &p.ProductName, &p.Category, &p.Unit, &p.Price, &p.Quantity, &p.Description}
}

// Supplier is a row of the suppliers table.
type Supplier struct {
	ID            int64  `json:"id"`
	SupplierName  string `json:"supplier_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// ScanTargets implements Record.
func (s *Supplier) ScanTargets() []any {
	return []any{&s.ID, &s.SupplierName, &s.ContactNumber, &s.Address, &s.ContactPerson, &s.Phone, &s.Email}
}

// IceCream is a row of the icecream table.
type IceCream struct {
	ID          int64   `json:"id"`
	Flavor      string  `json:"flavor"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Description string  `json:"description"`
}

// ScanTargets implements Record.
func (i *IceCream) ScanTargets() []any {
	return []any{&i.ID, &i.Flavor, &i.Size, &i.Price, &i.Stock, &i.Description}
}
