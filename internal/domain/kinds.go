package domain

// Record is implemented by pointers to the entity structs. ScanTargets
// returns scan destinations matching Kind.Columns() for the record's kind.
type Record interface {
	ScanTargets() []any
}

// Students is the field table for the students table.
var Students = Kind{
	Name:   "student",
	Label:  "Student",
	Plural: "students",
	Table:  "students",
	Path:   "/api/students",
	Fields: []Field{
		{Name: "name", Type: FieldString, Required: true},
		{Name: "email", Type: FieldString, Required: true},
		{Name: "major", Type: FieldString, Required: true},
		{Name: "gpa", Type: FieldNumber, Required: true},
		{Name: "enrollment_date", Type: FieldDate},
	},
	SearchColumns:   []string{"name", "email"},
	ConflictMessage: "Email already exists",
}

// Products is the field table for the products table.
var Products = Kind{
	Name:   "product",
	Label:  "Product",
	Plural: "products",
	Table:  "products",
	Path:   "/api/products",
	Fields: []Field{
		{Name: "product_name", Type: FieldString, Required: true},
		{Name: "category", Type: FieldString, Required: true},
		{Name: "unit", Type: FieldString, Required: true},
		{Name: "price", Type: FieldNumber},
		{Name: "quantity", Type: FieldInteger},
		{Name: "description", Type: FieldText},
	},
	SearchColumns:   []string{"product_name", "category"},
	ConflictMessage: "Product name already exists",
}

// Suppliers is the field table for the suppliers table.
var Suppliers = Kind{
	Name:   "supplier",
	Label:  "Supplier",
	Plural: "suppliers",
	Table:  "suppliers",
	Path:   "/api/suppliers",
	Fields: []Field{
		{Name: "supplier_name", Type: FieldString, Required: true},
		{Name: "contact_number", Type: FieldString, Required: true},
		{Name: "address", Type: FieldString, Required: true},
		{Name: "contact_person", Type: FieldText},
		{Name: "phone", Type: FieldText},
		{Name: "email", Type: FieldText},
	},
	SearchColumns:   []string{"supplier_name", "address"},
	ConflictMessage: "Supplier name already exists",
}

// IceCreams is the field table for the icecream table.
var IceCreams = Kind{
	Name:   "icecream",
	Label:  "Ice cream",
	Plural: "icecreams",
	Table:  "icecream",
	Path:   "/api/icecream",
	Fields: []Field{
		{Name: "flavor", Type: FieldString, Required: true},
		{Name: "size", Type: FieldString, Required: true},
		{Name: "price", Type: FieldNumber, Required: true},
		{Name: "stock", Type: FieldInteger},
		{Name: "description", Type: FieldText},
	},
	SearchColumns:   []string{"flavor", "size"},
	ConflictMessage: "Ice cream flavor and size already exists",
}

// Kinds lists every entity kind the API serves.
var Kinds = []Kind{Students, Products, Suppliers, IceCreams}
