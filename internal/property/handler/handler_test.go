package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homehaven/homehaven/backend/go-services/internal/property"
	"github.com/homehaven/homehaven/backend/go-services/internal/property/service"
	"github.com/stretchr/testify/require"
)

func newTestEngine(seeded bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterPropertyRoutes(g, service.NewMemoryService(seeded))
	return g
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestPropertyHandler_CreateGetDeleteRoundTrip(t *testing.T) {
	g := newTestEngine(false)

	// create with only the required fields
	w := doJSON(g, http.MethodPost, "/properties", `{"name":"Test","type":"House","price":100000,"location":"X","description":"Y"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotContains(t, raw, "bedrooms")
	require.NotContains(t, raw, "bathrooms")
	require.NotContains(t, raw, "area")

	var created property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, property.DefaultImage, created.Image)
	require.False(t, created.CreatedAt.IsZero())

	// fetch returns the identical record
	w = doJSON(g, http.MethodGet, "/properties/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, created, fetched)

	// delete echoes the record back
	w = doJSON(g, http.MethodDelete, "/properties/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var dr struct {
		Message  string            `json:"message"`
		Property property.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dr))
	require.Equal(t, "Property deleted successfully", dr.Message)
	require.Equal(t, created.ID, dr.Property.ID)

	// and it is gone
	w = doJSON(g, http.MethodGet, "/properties/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Property not found"}`, w.Body.String())
}

func TestPropertyHandler_ListFiltering(t *testing.T) {
	g := newTestEngine(true)

	w := doJSON(g, http.MethodGet, "/properties", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 5)

	// facet + search combine with AND; exactly the villa with the pool
	w = doJSON(g, http.MethodGet, "/properties?type=Villa&search=pool", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Luxury Villa with Pool", got[0].Name)

	// the All sentinel means no type restriction
	w = doJSON(g, http.MethodGet, "/properties?type=All", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 5)

	// facet matching is case-insensitive
	w = doJSON(g, http.MethodGet, "/properties?type=condo", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Contemporary Condo", got[0].Name)

	// nothing matches -> empty array, not null
	w = doJSON(g, http.MethodGet, "/properties?search=zzzzz", "")
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestPropertyHandler_CreateValidation(t *testing.T) {
	g := newTestEngine(false)

	for _, body := range []string{
		`{"type":"House","price":1,"location":"X","description":"Y"}`,
		`{"name":"T","type":"House","location":"X","description":"Y"}`,
		`{"name":"T","type":"House","price":"","location":"X","description":"Y"}`,
		`not json`,
	} {
		w := doJSON(g, http.MethodPost, "/properties", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		require.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	}

	// the collection is untouched after rejected creates
	w := doJSON(g, http.MethodGet, "/properties", "")
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestPropertyHandler_UpdatePreservesOmittedImage(t *testing.T) {
	g := newTestEngine(true)

	w := doJSON(g, http.MethodGet, "/properties/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var before property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
	require.NotEmpty(t, before.Image)

	body := `{"name":"Villa, renamed","type":"Villa","price":850000,"location":"Beverly Hills, CA","description":"Still has the pool."}`
	w = doJSON(g, http.MethodPut, "/properties/2", body)
	require.Equal(t, http.StatusOK, w.Code)
	var after property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	require.Equal(t, "Villa, renamed", after.Name)
	require.Equal(t, before.Image, after.Image)
	require.Equal(t, before.CreatedAt, after.CreatedAt)

	// unknown id and invalid body keep their own statuses
	w = doJSON(g, http.MethodPut, "/properties/missing", body)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(g, http.MethodPut, "/properties/2", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPropertyHandler_CoercesStringNumerics(t *testing.T) {
	g := newTestEngine(false)

	body := `{"name":"Loft","type":"Apartment","price":"$1,200/mo","location":"Midtown","description":"Bright loft","bedrooms":"2","bathrooms":"1.5","area":""}`
	w := doJSON(g, http.MethodPost, "/properties", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var p property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.True(t, p.Bedrooms.Set)
	require.Equal(t, 2, p.Bedrooms.Value)
	require.True(t, p.Bathrooms.Set)
	require.Equal(t, 1.5, p.Bathrooms.Value)
	require.False(t, p.Area.Set)

	price, textual := p.Price.Text()
	require.True(t, textual)
	require.Equal(t, "$1,200/mo", price)
}

func TestPropertyHandler_CreatePrependsToList(t *testing.T) {
	g := newTestEngine(true)

	w := doJSON(g, http.MethodPost, "/properties", `{"name":"Fresh","type":"House","price":1,"location":"L","description":"D"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(g, http.MethodGet, "/properties", "")
	var list []property.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 6)
	require.Equal(t, "Fresh", list[0].Name)
}
