package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnum_ClosedSet(t *testing.T) {
	roleField, ok := Entities["users"].Field("role")
	require.True(t, ok)

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{name: "member customer", value: "customer", wantErr: false},
		{name: "member staff", value: "staff", wantErr: false},
		{name: "member admin", value: "admin", wantErr: false},
		{name: "non-member string", value: "manager", wantErr: true},
		{name: "wrong case", value: "Customer", wantErr: true},
		{name: "leading space", value: " customer", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
		{name: "number", value: 42, wantErr: true},
		{name: "float", value: 1.5, wantErr: true},
		{name: "bool", value: true, wantErr: true},
		{name: "nil", value: nil, wantErr: true},
		{name: "object", value: map[string]interface{}{"role": "customer"}, wantErr: true},
		{name: "array", value: []string{"customer"}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidateEnum("users", roleField, testCase.value)
			if testCase.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, "role", verr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEnum_AllDeclaredSets(t *testing.T) {
	cases := []struct {
		entity string
		field  string
		set    []string
	}{
		{"users", "role", UserRoles},
		{"tables", "status", TableStatuses},
		{"orders", "order_type", OrderTypes},
		{"orders", "status", OrderStatuses},
		{"payments", "status", PaymentStatuses},
		{"payments", "payment_method", PaymentMethods},
	}

	for _, testCase := range cases {
		entity := Entities[testCase.entity]
		field, ok := entity.Field(testCase.field)
		require.True(t, ok, "%s.%s not declared", testCase.entity, testCase.field)
		assert.Equal(t, testCase.set, field.Enum)

		for _, member := range testCase.set {
			assert.NoError(t, ValidateEnum(testCase.entity, field, member))
		}
		assert.Error(t, ValidateEnum(testCase.entity, field, "definitely-not-a-member"))
		assert.Error(t, ValidateEnum(testCase.entity, field, 0))
	}
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		entity  string
		record  map[string]interface{}
		wantErr string
	}{
		{
			name:   "minimal valid user",
			entity: "users",
			record: map[string]interface{}{
				"clerk_id": "u1",
				"email":    "a@b.com",
				"role":     "customer",
			},
		},
		{
			name:   "optional fields present",
			entity: "users",
			record: map[string]interface{}{
				"clerk_id":     "u2",
				"email":        "c@d.com",
				"name":         "Dana",
				"phone_number": "555-0101",
				"role":         "staff",
			},
		},
		{
			name:   "missing required field",
			entity: "users",
			record: map[string]interface{}{
				"email": "a@b.com",
				"role":  "customer",
			},
			wantErr: "clerk_id",
		},
		{
			name:   "null is not absence",
			entity: "users",
			record: map[string]interface{}{
				"clerk_id": "u3",
				"email":    "a@b.com",
				"name":     nil,
				"role":     "customer",
			},
			wantErr: "name",
		},
		{
			name:   "undeclared field",
			entity: "users",
			record: map[string]interface{}{
				"clerk_id": "u4",
				"email":    "a@b.com",
				"role":     "customer",
				"nickname": "d",
			},
			wantErr: "nickname",
		},
		{
			name:   "enum violation inside record",
			entity: "users",
			record: map[string]interface{}{
				"clerk_id": "u5",
				"email":    "a@b.com",
				"role":     "manager",
			},
			wantErr: "role",
		},
		{
			name:   "wrong type for bool",
			entity: "branches",
			record: map[string]interface{}{
				"name":         "Downtown",
				"address":      "1 Main St",
				"city":         "Springfield",
				"state":        "IL",
				"zip_code":     "62701",
				"phone_number": "555-0100",
				"is_active":    "yes",
			},
			wantErr: "is_active",
		},
		{
			name:   "unknown entity",
			entity: "reservations",
			record: map[string]interface{}{},
			wantErr: "unknown entity",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidateRecord(testCase.entity, testCase.record)
			if testCase.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testCase.wantErr)
			}
		})
	}
}

func TestValidateValue_Numbers(t *testing.T) {
	qty, ok := Entities["order_items"].Field("quantity")
	require.True(t, ok)

	assert.NoError(t, ValidateValue("order_items", qty, 2))
	assert.NoError(t, ValidateValue("order_items", qty, float64(2))) // JSON decoding
	assert.Error(t, ValidateValue("order_items", qty, 2.5))
	assert.Error(t, ValidateValue("order_items", qty, "2"))

	price, ok := Entities["order_items"].Field("price_at_order")
	require.True(t, ok)
	assert.NoError(t, ValidateValue("order_items", price, 9.99))
	assert.NoError(t, ValidateValue("order_items", price, 10))
	assert.Error(t, ValidateValue("order_items", price, "9.99"))
}
