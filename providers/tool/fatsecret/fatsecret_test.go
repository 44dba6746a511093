package fatsecret

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pockeat/pockeat-go/core/food"
)

const searchPage = `<html><body>
<a href="/kalori-gizi/umum">All foods</a>
<a href="/kalori-gizi/umum/nasi-goreng">Nasi Goreng</a>
<a href="/kalori-gizi/umum/nasi-putih">Nasi Putih</a>
</body></html>`

const foodPage = `<html><body>
<h1>Nasi Goreng</h1>
<div class="nutrition_facts international">
<div>Energi</div>
<div>914 kj</div>
<div></div>
<div>218 kkal</div>
<div>Lemak</div>
<div>10,2g</div>
<div>Lemak Jenuh</div>
<div>1,9g</div>
<div>Karbohidrat</div>
<div>27,9g</div>
<div>Protein</div>
<div>4,5g</div>
<div>Serat</div>
<div>1,2g</div>
<div>Gula</div>
<div>2,1g</div>
<div>Natrium</div>
<div>620mg</div>
<div>Kalium</div>
<div>120mg</div>
</div>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/kalori-gizi/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			t.Error("expected q query parameter")
		}
		w.Write([]byte(searchPage))
	})
	mux.HandleFunc("/kalori-gizi/umum/nasi-goreng", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(foodPage))
	})
	return httptest.NewServer(mux)
}

func TestLookup(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := New().WithBaseURL(server.URL)
	result := client.Lookup(context.Background(), "nasi goreng")

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.FoodName != "Nasi Goreng" {
		t.Errorf("expected food name %q, got %q", "Nasi Goreng", result.FoodName)
	}
	if result.NutritionInfo.Calories != 218 {
		t.Errorf("expected 218 calories, got %v", result.NutritionInfo.Calories)
	}
	if result.NutritionInfo.Fat != 10.2 {
		t.Errorf("expected fat 10.2, got %v", result.NutritionInfo.Fat)
	}
	if result.NutritionInfo.SaturatedFat != 1.9 {
		t.Errorf("expected saturated fat 1.9, got %v", result.NutritionInfo.SaturatedFat)
	}
	if result.NutritionInfo.Sodium != 620 {
		t.Errorf("expected sodium 620, got %v", result.NutritionInfo.Sodium)
	}
	if result.NutritionInfo.VitaminsAndMinerals["potassium"] != 120 {
		t.Errorf("expected potassium 120, got %v", result.NutritionInfo.VitaminsAndMinerals["potassium"])
	}
	// Sodium 620mg exceeds the threshold.
	if len(result.Warnings) != 1 || result.Warnings[0] != food.HighSodiumWarning {
		t.Errorf("expected [%q], got %v", food.HighSodiumWarning, result.Warnings)
	}
	if result.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestLookup_NoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>No matches.</p></body></html>`))
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL)
	result := client.Lookup(context.Background(), "xyzzy")

	if result.Error == "" {
		t.Fatal("expected error-flagged result")
	}
	if !strings.Contains(result.Error, "no result found") {
		t.Errorf("unexpected error: %s", result.Error)
	}
	if result.FoodName != "xyzzy" {
		t.Errorf("expected keyword as food name, got %q", result.FoodName)
	}
}

func TestLookup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL)
	result := client.Lookup(context.Background(), "bakso")

	if result.Error == "" {
		t.Fatal("expected error-flagged result")
	}
}

func TestLookup_EmptyKeyword(t *testing.T) {
	client := New()
	result := client.Lookup(context.Background(), "  ")

	if result.Error == "" {
		t.Fatal("expected error-flagged result for empty keyword")
	}
}

func TestFirstFoodLink(t *testing.T) {
	link := firstFoodLink(searchPage)
	if link != "/kalori-gizi/umum/nasi-goreng" {
		t.Errorf("expected first concrete food link, got %q", link)
	}

	if link := firstFoodLink(`<a href="/kalori-gizi/umum/">index</a>`); link != "" {
		t.Errorf("expected no link for category index, got %q", link)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"218 kkal", 218},
		{"10,2g", 10.2},
		{"620mg", 620},
		{"1.5g", 1.5},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		if got := ParseFloat(tt.input); got != tt.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseNutritionMarkdown_KJFallback(t *testing.T) {
	markdown := "Energi\n\n914 kj\n\nProtein\n\n4,5g"

	info, found := parseNutritionMarkdown(markdown)
	if !found {
		t.Fatal("expected nutrients to be found")
	}

	want := 914 / 4.184
	if diff := info.Calories - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("expected calories %v from kJ conversion, got %v", want, info.Calories)
	}
	if info.VitaminsAndMinerals["energy_kj"] != 914 {
		t.Errorf("expected energy_kj 914 recorded, got %v", info.VitaminsAndMinerals["energy_kj"])
	}
}

func TestParseNutritionMarkdown_NothingFound(t *testing.T) {
	if _, found := parseNutritionMarkdown("Just some page text\nwith no nutrients"); found {
		t.Error("expected found=false for page without nutrients")
	}
}
