package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

type stubAuth struct {
	url      string
	redirect string
	err      error
}

func (s *stubAuth) LoginURL() (string, error) { return s.url, s.err }
func (s *stubAuth) CompleteLogin(context.Context, string, string) (string, error) {
	return s.redirect, s.err
}

type stubFlights struct {
	got []string
	err error
}

func (s *stubFlights) SearchFlights(_ context.Context, departure, arrival, date string) (response_models.FlightsResponse, error) {
	s.got = []string{departure, arrival, date}
	if s.err != nil {
		return response_models.FlightsResponse{}, s.err
	}
	return response_models.FlightsResponse{BestFlights: []any{}, OtherFlights: []any{}, Status: response_models.StatusSuccess}, nil
}

type stubHotels struct {
	query trip_models.HotelQuery
	err   error
}

func (s *stubHotels) SearchHotels(_ context.Context, q trip_models.HotelQuery) (infra.SearchResult, error) {
	s.query = q
	return infra.SearchResult{"properties": []any{}}, s.err
}

func (s *stubHotels) GetHotelInformation(_ context.Context, q trip_models.HotelQuery, name string) (response_models.HotelInformationResponse, error) {
	s.query = q
	return response_models.HotelInformationResponse{HotelInformation: map[string]any{"name": name}, HotelImages: []any{}}, s.err
}

type stubItinerary struct {
	trip trip_models.TripRequest
	text string
	err  error
}

func (s *stubItinerary) SubmitItinerary(_ context.Context, trip trip_models.TripRequest) (string, error) {
	s.trip = trip
	return s.text, s.err
}

type stubPlace struct {
	size int
	err  error
}

func (s *stubPlace) LookupPlace(_ context.Context, image []byte) (trip_models.PlaceExtraction, error) {
	s.size = len(image)
	if s.err != nil {
		return trip_models.PlaceExtraction{}, s.err
	}
	return trip_models.PlaceExtraction{RawText: "The Eiffel Tower in Paris.", Location: "Paris"}, nil
}

type testServer struct {
	auth      *stubAuth
	flights   *stubFlights
	hotels    *stubHotels
	itinerary *stubItinerary
	place     *stubPlace
	router    *gin.Engine
}

func newTestServer(maxUpload int64) *testServer {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	s := &testServer{
		auth:      &stubAuth{url: "https://accounts.google.com/o/oauth2/auth?state=s", redirect: "http://front/?name=A&email=a%40b"},
		flights:   &stubFlights{},
		hotels:    &stubHotels{},
		itinerary: &stubItinerary{text: "Day 1"},
		place:     &stubPlace{},
		router:    gin.New(),
	}

	authCtrl := NewAuthController(s.auth, log)
	flightCtrl := NewFlightController(s.flights, log)
	hotelCtrl := NewHotelController(s.hotels, log)
	itinCtrl := NewItineraryController(s.itinerary, log)
	placeCtrl := NewPlaceController(s.place, maxUpload, log)
	sys := NewSystemController()

	r := s.router
	r.GET("/", sys.Root)
	r.GET("/demo", sys.Demo)
	r.GET("/health", sys.Health)
	r.GET("/metrics", sys.Metrics())
	r.GET("/login/google", authCtrl.LoginGoogle)
	r.GET("/auth/google", authCtrl.AuthGoogle)
	r.POST("/getFlights", flightCtrl.GetFlights)
	r.POST("/searchHotels", hotelCtrl.SearchHotels)
	r.POST("/getHotelInformation", hotelCtrl.GetHotelInformation)
	r.POST("/submitIternary", itinCtrl.SubmitItinerary)
	r.POST("/picture2Place", placeCtrl.Picture2Place)
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSystemRoutes(t *testing.T) {
	s := newTestServer(0)

	assert.JSONEq(t, `{"Hello":"World"}`, s.do(http.MethodGet, "/", "").Body.String())
	assert.JSONEq(t, `{"Reached":"Backend"}`, s.do(http.MethodGet, "/demo", "").Body.String())
	assert.JSONEq(t, `{"status":"ok"}`, s.do(http.MethodGet, "/health", "").Body.String())

	w := s.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestLoginGoogle(t *testing.T) {
	s := newTestServer(0)

	w := s.do(http.MethodGet, "/login/google", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.auth.url, decode(t, w)["url"])
}

func TestAuthGoogle(t *testing.T) {
	s := newTestServer(0)

	w := s.do(http.MethodGet, "/auth/google?code=c&state=s", "")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, s.auth.redirect, w.Header().Get("Location"))

	s.auth.err = utils.ErrInvalidOAuthState
	w = s.do(http.MethodGet, "/auth/google?code=c&state=stale", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
}

func TestGetFlights(t *testing.T) {
	s := newTestServer(0)

	w := s.do(http.MethodPost, "/getFlights", `{"params":{"departure":"DEL - Delhi","arrival":"GOI - Goa","date":"2025-12-30"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, []any{}, body["best_flights"])
	assert.Equal(t, []string{"DEL - Delhi", "GOI - Goa", "2025-12-30"}, s.flights.got)

	w = s.do(http.MethodPost, "/getFlights", `{"params":{"departure":"DEL - Delhi"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.flights.err = utils.NewUpstreamError("serpapi", 401, "Invalid API key.")
	w = s.do(http.MethodPost, "/getFlights", `{"params":{"departure":"DEL - Delhi","arrival":"GOI - Goa","date":"2025-12-30"}}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "serpapi: Invalid API key.", decode(t, w)["message"])
}

func TestSearchHotels(t *testing.T) {
	s := newTestServer(0)

	w := s.do(http.MethodPost, "/searchHotels", `{"destination":"Jaipur","checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":"2","children":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "properties")
	assert.Equal(t, trip_models.HotelQuery{Query: "Jaipur", CheckIn: "2025-11-01", CheckOut: "2025-11-03", Adults: 2}, s.hotels.query)

	w = s.do(http.MethodPost, "/searchHotels", `{"destination":"Jaipur","checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":2,"children":"two"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/searchHotels", `{"destination":"Jaipur","checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPartySizeLimits(t *testing.T) {
	s := newTestServer(0)
	s.hotels.query = trip_models.HotelQuery{}

	for name, tc := range map[string]struct{ path, body string }{
		"hotel search huge children": {"/searchHotels",
			`{"destination":"Jaipur","checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":1,"children":"100000000000"}`},
		"hotel search too many adults": {"/searchHotels",
			`{"destination":"Jaipur","checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":31,"children":0}`},
		"hotel information huge children": {"/getHotelInformation",
			`{"payload":{"checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":1,"children":100000000000},"property_token":"ChkI","name":"Palace"}`},
		"itinerary huge children": {"/submitIternary",
			`{"params":{"destination":"Goa","date":"2025-12-30","days":2,"adults":2,"children":"100000000000","minBudget":1,"maxBudget":2}}`},
		"itinerary too many days": {"/submitIternary",
			`{"params":{"destination":"Goa","date":"2025-12-30","days":91,"adults":2,"minBudget":1,"maxBudget":2}}`},
	} {
		t.Run(name, func(t *testing.T) {
			w := s.do(http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Equal(t, trip_models.HotelQuery{}, s.hotels.query, "no request reaches the hotel service")
	assert.Empty(t, s.itinerary.trip.Destination)

	w := s.do(http.MethodPost, "/searchHotels", `{"destination":"Jaipur","checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":30,"children":"20"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, s.hotels.query.Children)
}

func TestGetHotelInformation(t *testing.T) {
	s := newTestServer(0)

	w := s.do(http.MethodPost, "/getHotelInformation", `{"payload":{"checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":2,"children":0},"property_token":"ChkI","name":"Palace"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, map[string]any{"name": "Palace"}, body["hotel_information"])
	assert.Equal(t, []any{}, body["hotel_images"])
	assert.Equal(t, "ChkI", s.hotels.query.PropertyToken)

	w = s.do(http.MethodPost, "/getHotelInformation", `{"payload":{"checkinDate":"2025-11-01","checkoutDate":"2025-11-03","adults":2},"name":"Palace"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitItinerary(t *testing.T) {
	s := newTestServer(0)
	valid := `{"params":{"destination":"Goa","date":"2025-12-30","days":4,"adults":2,"children":"1","minBudget":40000,"maxBudget":"80000","interests":["Romantic","Cultural"],"description":"x"}}`

	w := s.do(http.MethodPost, "/submitIternary", valid)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Day 1", decode(t, w)["result"])
	assert.Equal(t, 4, s.itinerary.trip.Nights)
	assert.Equal(t, 1, s.itinerary.trip.Children)
	assert.Equal(t, 80000, s.itinerary.trip.MaxBudget)

	s.itinerary.err = utils.ErrUnknownInterest
	w = s.do(http.MethodPost, "/submitIternary", valid)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.itinerary.err = nil

	for name, body := range map[string]string{
		"inverted budget": `{"params":{"destination":"Goa","date":"2025-12-30","days":4,"adults":2,"minBudget":9000,"maxBudget":100}}`,
		"zero days":       `{"params":{"destination":"Goa","date":"2025-12-30","days":0,"adults":2,"minBudget":1,"maxBudget":2}}`,
		"missing budget":  `{"params":{"destination":"Goa","date":"2025-12-30","days":2,"adults":2,"minBudget":1}}`,
		"negative budget": `{"params":{"destination":"Goa","date":"2025-12-30","days":2,"adults":2,"minBudget":-5,"maxBudget":2}}`,
		"text children":   `{"params":{"destination":"Goa","date":"2025-12-30","days":2,"adults":2,"children":"some","minBudget":1,"maxBudget":2}}`,
		"bad date":        `{"params":{"destination":"Goa","date":"next week","days":2,"adults":2,"minBudget":1,"maxBudget":2}}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/submitIternary", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func multipartImage(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestPicture2Place(t *testing.T) {
	s := newTestServer(1 << 20)

	body, ct := multipartImage(t, "image", []byte("fake-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/picture2Place", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "The Eiffel Tower in Paris.", out["result"])
	assert.Equal(t, "Paris", out["Location"])
	assert.Equal(t, len("fake-bytes"), s.place.size)
}

func TestPicture2Place_Errors(t *testing.T) {
	s := newTestServer(1 << 20)

	body, ct := multipartImage(t, "file", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/picture2Place", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.place.err = utils.ErrUnsupportedImageFormat
	body, ct = multipartImage(t, "image", []byte("%PDF"))
	req = httptest.NewRequest(http.MethodPost, "/picture2Place", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	s.place.err = fmt.Errorf("%w: 65535x65535 exceeds 89478485 pixels", utils.ErrImageTooLarge)
	body, ct = multipartImage(t, "image", []byte("GIF89a"))
	req = httptest.NewRequest(http.MethodPost, "/picture2Place", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, decode(t, w)["message"], "image too large")
}
