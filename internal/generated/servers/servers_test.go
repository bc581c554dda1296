package servers_test

import (
	"encoding/json"
	"testing"

	"shipping/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestGetSwagger(t *testing.T) {
	t.Run("should load and validate the embedded document", func(t *testing.T) {
		doc, err := servers.GetSwagger()

		require.NoError(t, err)
		assert.Equal(t, "Shipping", doc.Info.Title)
		for _, path := range []string{"/v1/units/{kind}", "/v1/conversions", "/v1/packages/measurements", "/v1/shipments/pack"} {
			assert.NotNil(t, doc.Paths.Find(path), path)
		}
	})

	t.Run("should register the document with swag", func(t *testing.T) {
		doc, err := swag.ReadDoc()

		require.NoError(t, err)
		assert.JSONEq(t, string(servers.RawSpec()), doc)
	})
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	t.Run("should keep number and string literals", func(t *testing.T) {
		var item servers.LineItem

		require.NoError(t, json.Unmarshal([]byte(`{"quantity":1,"grams":2,"price":12.50}`), &item))
		assert.Equal(t, servers.Money("12.50"), *item.Price)

		require.NoError(t, json.Unmarshal([]byte(`{"quantity":1,"grams":2,"price":"1250"}`), &item))
		assert.Equal(t, servers.Money("1250"), *item.Price)

		require.NoError(t, json.Unmarshal([]byte(`{"quantity":1,"grams":2,"price":7}`), &item))
		assert.Equal(t, servers.Money("7"), *item.Price)
	})

	t.Run("should reject other JSON values", func(t *testing.T) {
		var item servers.LineItem

		require.Error(t, json.Unmarshal([]byte(`{"quantity":1,"grams":2,"price":true}`), &item))
		require.Error(t, json.Unmarshal([]byte(`{"quantity":1,"grams":2,"price":{"cents":1}}`), &item))
	})

	t.Run("should encode as a string", func(t *testing.T) {
		data, err := json.Marshal(servers.Money("3.10"))

		require.NoError(t, err)
		assert.Equal(t, `"3.10"`, string(data))
	})
}
