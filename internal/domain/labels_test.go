package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyTypeLabel(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "Apartamento", code: 574, want: "Apartment"},
		{name: "Andar inteiro", code: 1207, want: "Full Floor"},
		{name: "Código desconhecido", code: 999, want: ""},
		{name: "Código ausente", code: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PropertyTypeLabel(tt.code))
		})
	}
}

func TestBedroomsLabel(t *testing.T) {
	assert.Equal(t, BedroomLabel("STD"), BedroomsLabel(1227))
	assert.Equal(t, BedroomLabel("7BR"), BedroomsLabel(1241))
	assert.Equal(t, BedroomLabel(""), BedroomsLabel(42))
}

func TestLeadSourceLabel(t *testing.T) {
	assert.Equal(t, "Bayut", LeadSourceLabel("UC_SW1FK0"))
	assert.Equal(t, "Facebook - Open Channel", LeadSourceLabel("2|FACEBOOK"))
	assert.Equal(t, "Unknown Source", LeadSourceLabel("UC_NOPE"))
	assert.Equal(t, "Unknown Source", LeadSourceLabel(""))
}

func TestFallbacksAreDistinct(t *testing.T) {
	property, _ := json.Marshal(PropertyTypeLabel(-1))
	bedrooms, _ := json.Marshal(BedroomsLabel(-1))
	source, _ := json.Marshal(LeadSourceLabel("-1"))

	assert.Equal(t, `""`, string(property))
	assert.Equal(t, `0`, string(bedrooms))
	assert.Equal(t, `"Unknown Source"`, string(source))
}

func TestBedroomLabel_JSON(t *testing.T) {
	row := struct {
		NoOfBr BedroomLabel `json:"noOfBr"`
	}{NoOfBr: "2BR"}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"noOfBr":"2BR"}`, string(data))

	var decoded struct {
		NoOfBr BedroomLabel `json:"noOfBr"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"noOfBr":0}`), &decoded))
	assert.Equal(t, BedroomLabel(""), decoded.NoOfBr)
}

func TestEmployeeNames(t *testing.T) {
	emp := Employee{Name: "Sara", LastName: ""}
	assert.Equal(t, "Sara", emp.FullName())
	assert.Equal(t, "Sara ", emp.DisplayName())

	assert.Equal(t, []int{3, 7}, EmployeeIDs([]Employee{{ID: 3}, {ID: 7}}))
}
