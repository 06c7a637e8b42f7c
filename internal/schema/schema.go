package schema

// FieldType is the semantic type of a declared field, independent of how the
// storage engine represents it.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeInt         FieldType = "int"
	TypeFloat       FieldType = "float"
	TypeBool        FieldType = "bool"
	TypeID          FieldType = "id"
	TypeTime        FieldType = "time"
	TypeObjectArray FieldType = "object_array"
)

// Field declares one column of an entity. Enum is non-nil only for
// enumerated string fields; Ref names the entity an id field points at.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
	Enum     []string
	Ref      string
}

// Index declares a secondary access path. Field order matters: lookups are
// efficient for any prefix of the tuple. Unique indexes additionally carry a
// transactional check-then-insert in the repository layer.
type Index struct {
	Name   string
	Fields []string
	Unique bool
}

// Entity is the declared shape of one record collection. The synthetic id
// and created_at columns are implicit on every entity and are not listed in
// Fields.
type Entity struct {
	Name    string
	Fields  []Field
	Indexes []Index
}

// Field returns the declaration for the named field.
func (e Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Index returns the named index declaration.
func (e Entity) Index(name string) (Index, bool) {
	for _, idx := range e.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index{}, false
}

// Enumerated value domains. Closed sets: anything outside them is rejected
// at write time.
var (
	UserRoles       = []string{"customer", "staff", "admin"}
	TableStatuses   = []string{"available", "occupied", "reserved"}
	OrderTypes      = []string{"dine-in", "takeout", "delivery"}
	OrderStatuses   = []string{"pending", "confirmed", "preparing", "ready", "completed", "cancelled"}
	PaymentStatuses = []string{"pending", "succeeded", "failed", "refunded"}
	PaymentMethods  = []string{"card", "cash", "other"}
)

// Entities is the full declarative registry for the platform, keyed by
// collection name. It mirrors the GORM models in internal/models and is the
// source of truth the validators consult.
var Entities = map[string]Entity{
	"users": {
		Name: "users",
		Fields: []Field{
			{Name: "clerk_id", Type: TypeString},
			{Name: "email", Type: TypeString},
			{Name: "name", Type: TypeString, Optional: true},
			{Name: "phone_number", Type: TypeString, Optional: true},
			{Name: "role", Type: TypeString, Enum: UserRoles},
		},
		Indexes: []Index{
			{Name: "by_clerk_id", Fields: []string{"clerk_id"}, Unique: true},
			{Name: "by_email", Fields: []string{"email"}},
		},
	},
	"branches": {
		Name: "branches",
		Fields: []Field{
			{Name: "name", Type: TypeString},
			{Name: "address", Type: TypeString},
			{Name: "city", Type: TypeString},
			{Name: "state", Type: TypeString},
			{Name: "zip_code", Type: TypeString},
			{Name: "phone_number", Type: TypeString},
			{Name: "email", Type: TypeString, Optional: true},
			{Name: "is_active", Type: TypeBool},
		},
		Indexes: []Index{
			{Name: "by_is_active", Fields: []string{"is_active"}},
		},
	},
	"categories": {
		Name: "categories",
		Fields: []Field{
			{Name: "name", Type: TypeString},
			{Name: "description", Type: TypeString, Optional: true},
			{Name: "display_order", Type: TypeInt, Optional: true},
			{Name: "is_active", Type: TypeBool},
		},
		Indexes: []Index{
			{Name: "by_is_active", Fields: []string{"is_active"}},
			{Name: "by_display_order", Fields: []string{"display_order"}},
		},
	},
	"menu_items": {
		Name: "menu_items",
		Fields: []Field{
			{Name: "category_id", Type: TypeID, Ref: "categories"},
			{Name: "branch_id", Type: TypeID, Ref: "branches", Optional: true},
			{Name: "name", Type: TypeString},
			{Name: "description", Type: TypeString, Optional: true},
			{Name: "price", Type: TypeFloat},
			{Name: "image_url", Type: TypeString, Optional: true},
			{Name: "preparation_time", Type: TypeInt, Optional: true},
			{Name: "is_available", Type: TypeBool},
		},
		Indexes: []Index{
			{Name: "by_category", Fields: []string{"category_id"}},
			{Name: "by_branch", Fields: []string{"branch_id"}},
			{Name: "by_available_category", Fields: []string{"is_available", "category_id"}},
		},
	},
	"tables": {
		Name: "tables",
		Fields: []Field{
			{Name: "branch_id", Type: TypeID, Ref: "branches"},
			{Name: "table_number", Type: TypeInt},
			{Name: "capacity", Type: TypeInt},
			{Name: "status", Type: TypeString, Enum: TableStatuses},
		},
		Indexes: []Index{
			{Name: "by_branch", Fields: []string{"branch_id"}},
			{Name: "by_branch_status", Fields: []string{"branch_id", "status"}},
			{Name: "by_branch_table", Fields: []string{"branch_id", "table_number"}, Unique: true},
		},
	},
	"orders": {
		Name: "orders",
		Fields: []Field{
			{Name: "user_id", Type: TypeID, Ref: "users"},
			{Name: "branch_id", Type: TypeID, Ref: "branches"},
			{Name: "table_id", Type: TypeID, Ref: "tables", Optional: true},
			{Name: "order_number", Type: TypeString},
			{Name: "order_type", Type: TypeString, Enum: OrderTypes},
			{Name: "status", Type: TypeString, Enum: OrderStatuses},
			{Name: "total_amount", Type: TypeFloat},
			{Name: "notes", Type: TypeString, Optional: true},
		},
		Indexes: []Index{
			{Name: "by_order_number", Fields: []string{"order_number"}, Unique: true},
			{Name: "by_user", Fields: []string{"user_id"}},
			{Name: "by_branch", Fields: []string{"branch_id"}},
			{Name: "by_status", Fields: []string{"status"}},
			{Name: "by_branch_status", Fields: []string{"branch_id", "status"}},
		},
	},
	"order_items": {
		Name: "order_items",
		Fields: []Field{
			{Name: "order_id", Type: TypeID, Ref: "orders"},
			{Name: "menu_item_id", Type: TypeID, Ref: "menu_items"},
			{Name: "quantity", Type: TypeInt},
			{Name: "price_at_order", Type: TypeFloat},
			{Name: "subtotal", Type: TypeFloat},
			{Name: "special_instructions", Type: TypeString, Optional: true},
		},
		Indexes: []Index{
			{Name: "by_order", Fields: []string{"order_id"}},
			{Name: "by_menu_item", Fields: []string{"menu_item_id"}},
		},
	},
	"payments": {
		Name: "payments",
		Fields: []Field{
			{Name: "order_id", Type: TypeID, Ref: "orders"},
			{Name: "stripe_payment_intent_id", Type: TypeString, Optional: true},
			{Name: "amount", Type: TypeFloat},
			{Name: "payment_method", Type: TypeString, Enum: PaymentMethods},
			{Name: "status", Type: TypeString, Enum: PaymentStatuses},
		},
		Indexes: []Index{
			{Name: "by_order", Fields: []string{"order_id"}},
			{Name: "by_payment_intent", Fields: []string{"stripe_payment_intent_id"}},
			{Name: "by_status", Fields: []string{"status"}},
		},
	},
	"analytics": {
		Name: "analytics",
		Fields: []Field{
			{Name: "branch_id", Type: TypeID, Ref: "branches", Optional: true},
			{Name: "period_start", Type: TypeTime},
			{Name: "period_end", Type: TypeTime},
			{Name: "total_revenue", Type: TypeFloat},
			{Name: "order_count", Type: TypeInt},
			{Name: "customer_count", Type: TypeInt},
			{Name: "average_order_value", Type: TypeFloat},
			{Name: "top_menu_items", Type: TypeObjectArray, Optional: true},
		},
		Indexes: []Index{
			{Name: "by_branch", Fields: []string{"branch_id"}},
			{Name: "by_branch_period", Fields: []string{"branch_id", "period_start"}},
			{Name: "by_period", Fields: []string{"period_start", "period_end"}},
		},
	},
}

// Lookup returns the registry entry for a collection name.
func Lookup(name string) (Entity, bool) {
	e, ok := Entities[name]
	return e, ok
}
