package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/proproperty/valuation-api/internal/core/domain"
	"github.com/proproperty/valuation-api/internal/core/model"
	"github.com/proproperty/valuation-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubPredictionRepo struct {
	rows      []domain.Prediction
	recordErr error
	listErr   error
}

func (r *stubPredictionRepo) Record(_ context.Context, p *domain.Prediction) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	clone := *p
	// Prepend: the ledger reads back most recent first.
	r.rows = append([]domain.Prediction{clone}, r.rows...)
	return nil
}

func (r *stubPredictionRepo) List(_ context.Context, username string) ([]domain.Prediction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if username == "" {
		return append([]domain.Prediction(nil), r.rows...), nil
	}
	var out []domain.Prediction
	for _, row := range r.rows {
		if row.Username == username {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubResolver struct {
	place        domain.Place
	placeOK      bool
	coords       domain.Coordinates
	coordsOK     bool
	pincodeCalls int
	geocodeCalls int
	lastCountry  string
}

func (s *stubResolver) ResolvePincode(_ context.Context, pincode, countryCode string) (domain.Place, bool) {
	s.pincodeCalls++
	s.lastCountry = countryCode
	return s.place, s.placeOK
}

func (s *stubResolver) Geocode(_ context.Context, city, state, country string) (domain.Coordinates, bool) {
	s.geocodeCalls++
	return s.coords, s.coordsOK
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func testArtifact(t *testing.T) *model.Artifact {
	t.Helper()
	dir := t.TempDir()
	columnsPath := filepath.Join(dir, "model_columns.json")
	weightsPath := filepath.Join(dir, "house_model.json")

	columns := `["area","bedrooms","bathrooms","stories","parking",
		"mainroad_yes","guestroom_yes","basement_yes","hotwaterheating_yes",
		"airconditioning_yes","prefarea_yes",
		"furnishingstatus_semi-furnished","furnishingstatus_unfurnished"]`
	weights := `{"intercept":500000,"coefficients":{"area":2000,"bedrooms":300000}}`

	if err := os.WriteFile(columnsPath, []byte(columns), 0o644); err != nil {
		t.Fatalf("write columns: %v", err)
	}
	if err := os.WriteFile(weightsPath, []byte(weights), 0o644); err != nil {
		t.Fatalf("write weights: %v", err)
	}

	artifact, err := model.Load(weightsPath, columnsPath)
	if err != nil {
		t.Fatalf("load artifact: %v", err)
	}
	return artifact
}

func minimalInput(username string) ports.ValuationInput {
	return ports.ValuationInput{
		Username: username,
		Property: domain.PropertyInput{
			Country:    "India",
			State:      "Maharashtra",
			City:       "Mumbai",
			Pincode:    "400001",
			Area:       1200,
			Bedrooms:   3,
			Bathrooms:  2,
			Stories:    2,
			Parking:    1,
			Furnishing: domain.SemiFurnished,
		},
	}
}

func mumbaiResolver() *stubResolver {
	return &stubResolver{
		place: domain.Place{
			City:        "Mumbai",
			State:       "Maharashtra",
			Coordinates: domain.Coordinates{Lat: 18.9388, Lon: 72.8354},
		},
		placeOK: true,
	}
}

// ---------------------------------------------------------------------------
// Appraise tests
// ---------------------------------------------------------------------------

func TestValuationService_Appraise_Success(t *testing.T) {
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	result, err := svc.Appraise(context.Background(), minimalInput("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 500000 + 2000*1200 + 300000*3
	want := 500_000.0 + 2_400_000 + 900_000
	if result.PredictedPrice != want {
		t.Errorf("price: expected %v, got %v", want, result.PredictedPrice)
	}
	if result.Segment != domain.SegmentAffordable {
		t.Errorf("expected Affordable for %v, got %s", want, result.Segment)
	}
	if result.BandLow != want*0.90 || result.BandHigh != want*1.10 {
		t.Errorf("band wrong: [%v, %v]", result.BandLow, result.BandHigh)
	}
	if result.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}

func TestValuationService_Appraise_PricePerAreaStoredExactly(t *testing.T) {
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	result, err := svc.Appraise(context.Background(), minimalInput("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.rows[0]
	if stored.PricePerArea != stored.PredictedPrice/stored.Property.Area {
		t.Errorf("stored price_per_area %v != price/area %v",
			stored.PricePerArea, stored.PredictedPrice/stored.Property.Area)
	}
	if result.PricePerArea != stored.PricePerArea {
		t.Errorf("result and ledger disagree on price_per_area")
	}
}

func TestValuationService_Appraise_ModelUnavailable(t *testing.T) {
	svc := NewValuationService(&stubPredictionRepo{}, mumbaiResolver(), nil, discardLogger)

	if _, err := svc.Appraise(context.Background(), minimalInput("alice")); !errors.Is(err, domain.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestValuationService_Appraise_Validation(t *testing.T) {
	svc := NewValuationService(&stubPredictionRepo{}, mumbaiResolver(), testArtifact(t), discardLogger)

	cases := []struct {
		name   string
		mutate func(*ports.ValuationInput)
	}{
		{"small area", func(in *ports.ValuationInput) { in.Property.Area = 99 }},
		{"no city and no pincode", func(in *ports.ValuationInput) {
			in.Property.City = " "
			in.Property.Pincode = ""
		}},
		{"no state and no pincode", func(in *ports.ValuationInput) {
			in.Property.State = ""
			in.Property.Pincode = ""
		}},
		{"bad furnishing", func(in *ports.ValuationInput) { in.Property.Furnishing = "Lavish" }},
	}
	for _, tc := range cases {
		in := minimalInput("alice")
		tc.mutate(&in)
		if _, err := svc.Appraise(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestValuationService_Appraise_PincodePreferredOverGeocode(t *testing.T) {
	resolver := mumbaiResolver()
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, resolver, testArtifact(t), discardLogger)

	_, err := svc.Appraise(context.Background(), minimalInput("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.pincodeCalls != 1 {
		t.Errorf("expected 1 pincode lookup, got %d", resolver.pincodeCalls)
	}
	if resolver.geocodeCalls != 0 {
		t.Errorf("pincode hit must short-circuit geocoding, got %d calls", resolver.geocodeCalls)
	}
	if resolver.lastCountry != "IN" {
		t.Errorf("expected country code IN, got %q", resolver.lastCountry)
	}
	if repo.rows[0].Coordinates == nil || repo.rows[0].Coordinates.Lat != 18.9388 {
		t.Errorf("expected Mumbai coordinates on ledger row, got %+v", repo.rows[0].Coordinates)
	}
}

func TestValuationService_Appraise_GeocodeFallback(t *testing.T) {
	resolver := &stubResolver{
		coords:   domain.Coordinates{Lat: 18.5196, Lon: 73.8553},
		coordsOK: true,
	}
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, resolver, testArtifact(t), discardLogger)

	in := minimalInput("alice")
	in.Property.Pincode = ""
	in.Property.City = "Pune"

	if _, err := svc.Appraise(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolver.pincodeCalls != 0 {
		t.Errorf("no pincode given, expected 0 pincode lookups, got %d", resolver.pincodeCalls)
	}
	if resolver.geocodeCalls != 1 {
		t.Errorf("expected 1 geocode call, got %d", resolver.geocodeCalls)
	}
	if repo.rows[0].Coordinates == nil || repo.rows[0].Coordinates.Lon != 73.8553 {
		t.Errorf("expected Pune coordinates, got %+v", repo.rows[0].Coordinates)
	}
}

func TestValuationService_Appraise_UnresolvedLocationHasNoPin(t *testing.T) {
	resolver := &stubResolver{} // resolves nothing
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, resolver, testArtifact(t), discardLogger)

	in := minimalInput("alice")
	in.Property.City = "Atlantis"

	result, err := svc.Appraise(context.Background(), in)
	if err != nil {
		t.Fatalf("resolution miss must not fail the valuation: %v", err)
	}
	if result.Coordinates != nil {
		t.Errorf("expected nil coordinates, got %+v", result.Coordinates)
	}
	if repo.rows[0].Coordinates != nil {
		t.Errorf("ledger row must carry no pin, got %+v", repo.rows[0].Coordinates)
	}
}

func TestValuationService_Appraise_ExplicitCoordinatesSkipResolver(t *testing.T) {
	resolver := mumbaiResolver()
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, resolver, testArtifact(t), discardLogger)

	in := minimalInput("alice")
	in.Coordinates = &domain.Coordinates{Lat: 19.0596, Lon: 72.8295}

	if _, err := svc.Appraise(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolver.pincodeCalls != 0 || resolver.geocodeCalls != 0 {
		t.Errorf("explicit coordinates must skip the resolver (%d/%d calls)",
			resolver.pincodeCalls, resolver.geocodeCalls)
	}
	if repo.rows[0].Coordinates.Lat != 19.0596 {
		t.Errorf("expected override coordinates stored, got %+v", repo.rows[0].Coordinates)
	}
}

func TestValuationService_Appraise_BackfillsCityFromPincode(t *testing.T) {
	resolver := mumbaiResolver()
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, resolver, testArtifact(t), discardLogger)

	in := minimalInput("alice")
	in.Property.City = ""
	in.Property.State = ""

	if _, err := svc.Appraise(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := repo.rows[0]
	if stored.Property.City != "Mumbai" || stored.Property.State != "Maharashtra" {
		t.Errorf("expected city/state backfilled from pincode, got %q/%q",
			stored.Property.City, stored.Property.State)
	}
}

func TestValuationService_Appraise_MediaRefsCommaJoined(t *testing.T) {
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	in := minimalInput("alice")
	in.MediaRefs = []string{"photo_alice_20260831_0.jpg", "photo_alice_20260831_1.jpg"}

	if _, err := svc.Appraise(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "photo_alice_20260831_0.jpg,photo_alice_20260831_1.jpg"
	if repo.rows[0].MediaRefs != want {
		t.Errorf("media refs: expected %q, got %q", want, repo.rows[0].MediaRefs)
	}
}

func TestValuationService_Appraise_RepoError(t *testing.T) {
	repo := &stubPredictionRepo{recordErr: errors.New("db unavailable")}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	if _, err := svc.Appraise(context.Background(), minimalInput("alice")); err == nil {
		t.Fatal("expected error when ledger write fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Read-path tests
// ---------------------------------------------------------------------------

func seedLedger(t *testing.T, svc *ValuationService, username, city string, mutate func(*ports.ValuationInput)) {
	t.Helper()
	in := minimalInput(username)
	in.Property.City = city
	if mutate != nil {
		mutate(&in)
	}
	if _, err := svc.Appraise(context.Background(), in); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestValuationService_History_FiltersByUser(t *testing.T) {
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	seedLedger(t, svc, "alice", "Mumbai", nil)
	seedLedger(t, svc, "bob", "Pune", nil)

	all, err := svc.History(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 rows, got %d", len(all))
	}

	mine, _ := svc.History(context.Background(), "alice")
	if len(mine) != 1 || mine[0].Username != "alice" {
		t.Errorf("expected alice's single row, got %+v", mine)
	}
}

func TestValuationService_History_StorageFailureYieldsEmptySet(t *testing.T) {
	// Deliberate degradation: a failed history read is indistinguishable
	// from an empty ledger at the API surface.
	repo := &stubPredictionRepo{listErr: errors.New("db unavailable")}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	rows, err := svc.History(context.Background(), "")
	if err != nil {
		t.Fatalf("read failure must not surface an error, got %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil set, got %v", rows)
	}
}

func TestValuationService_Summary_Aggregates(t *testing.T) {
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	seedLedger(t, svc, "alice", "Mumbai", nil)
	seedLedger(t, svc, "alice", "Mumbai", func(in *ports.ValuationInput) { in.Property.Area = 5000 })
	seedLedger(t, svc, "bob", "Pune", nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("total: expected 3, got %d", summary.Total)
	}
	if summary.AvgPrice <= 0 || summary.AvgPricePerArea <= 0 {
		t.Errorf("averages must be positive: %+v", summary)
	}
	if len(summary.Cities) != 2 || summary.Cities[0].City != "Mumbai" || summary.Cities[0].Count != 2 {
		t.Errorf("city counts wrong: %+v", summary.Cities)
	}

	var segTotal int
	for _, sc := range summary.Segments {
		segTotal += sc.Count
	}
	if segTotal != 3 {
		t.Errorf("segment counts must cover all rows, got %d", segTotal)
	}
}

func TestValuationService_Summary_EmptyLedger(t *testing.T) {
	svc := NewValuationService(&stubPredictionRepo{}, mumbaiResolver(), testArtifact(t), discardLogger)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 0 || summary.AvgPrice != 0 {
		t.Errorf("expected zeroed summary, got %+v", summary)
	}
}

func TestValuationService_MapPins_SkipsUnresolvedRows(t *testing.T) {
	repo := &stubPredictionRepo{}
	resolver := mumbaiResolver()
	svc := NewValuationService(repo, resolver, testArtifact(t), discardLogger)

	seedLedger(t, svc, "alice", "Mumbai", nil)

	// Second row resolves nothing: no pin expected.
	resolver.placeOK = false
	seedLedger(t, svc, "alice", "Atlantis", func(in *ports.ValuationInput) { in.Property.Pincode = "" })

	pins, err := svc.MapPins(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pins) != 1 {
		t.Fatalf("expected 1 pin, got %d", len(pins))
	}
	if pins[0].City != "Mumbai" || pins[0].Coordinates.Lat != 18.9388 {
		t.Errorf("unexpected pin: %+v", pins[0])
	}
}

// End-to-end ledger scenario: register/login covered in auth tests; this
// exercises the valuation path with the reference pincode values.
func TestValuationService_Scenario_Pincode400001(t *testing.T) {
	repo := &stubPredictionRepo{}
	svc := NewValuationService(repo, mumbaiResolver(), testArtifact(t), discardLogger)

	result, err := svc.Appraise(context.Background(), minimalInput("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.rows[0]
	if stored.Property.City != "Mumbai" || stored.Property.State != "Maharashtra" {
		t.Errorf("expected Mumbai/Maharashtra, got %q/%q", stored.Property.City, stored.Property.State)
	}
	if stored.PricePerArea != result.PredictedPrice/1200 {
		t.Errorf("price_per_area formula violated")
	}
	if stored.Segment != domain.SegmentFor(result.PredictedPrice) {
		t.Errorf("segment does not match the threshold ladder")
	}
	ts := time.Since(stored.CreatedAt)
	if ts < 0 || ts > time.Minute {
		t.Errorf("implausible ledger timestamp: %v", stored.CreatedAt)
	}
}
