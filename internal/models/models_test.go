package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItem_FlattensProductFields(t *testing.T) {
	t.Parallel()

	item := CartItem{
		Product:  Product{ID: 1, Name: "Galaxy S25 Ultra", Price: 129999, Description: "d", Image: "i"},
		Quantity: 2,
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Galaxy S25 Ultra","price":129999,"description":"d","image":"i","quantity":2}`, string(data))
}

func TestUser_ReadsStoredLayout(t *testing.T) {
	t.Parallel()

	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1700000000000,"name":"Jane","email":"jane@x.com","password":"pw1","isAdmin":true}`), &u))
	assert.Equal(t, int64(1700000000000), u.ID)
	assert.Equal(t, "jane@x.com", u.Email)
	assert.True(t, u.IsAdmin)
}
