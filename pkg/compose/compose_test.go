package compose

import (
	"reflect"
	"testing"

	"github.com/Tpypan/wwlens/models"
)

func mapping(kv map[string]string) models.FieldMapping {
	m := models.FieldMapping{}
	for k, v := range kv {
		m[k] = models.Field{Key: k, Label: k, Value: v}
	}
	return m
}

func keys(items []models.PriorityItem) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Key)
	}
	return out
}

func TestCompose_LocationFromCityProvince(t *testing.T) {
	fields := mapping(map[string]string{
		models.KeyCity:     "Waterloo",
		models.KeyProvince: "ON",
	})
	items := Compose(fields, models.DefaultSettings())
	if len(items) != 1 || items[0].Key != models.KeyLocation {
		t.Fatalf("items = %+v, want single location item", items)
	}
	if items[0].Value != "Waterloo, ON" {
		t.Errorf("location = %q, want %q", items[0].Value, "Waterloo, ON")
	}
}

func TestCompose_LocationRegionFallback(t *testing.T) {
	fields := mapping(map[string]string{models.KeyRegion: "Remote"})
	items := Compose(fields, models.DefaultSettings())
	if len(items) != 1 || items[0].Value != "Remote" {
		t.Fatalf("items = %+v, want single location item with value Remote", items)
	}
}

func TestCompose_NoLocationSources(t *testing.T) {
	fields := mapping(map[string]string{models.KeyDuration: "4 months"})
	for _, it := range Compose(fields, models.DefaultSettings()) {
		if it.Key == models.KeyLocation {
			t.Errorf("location item present with no sources: %+v", it)
		}
	}
}

func TestCompose_TrivialMethodExcluded(t *testing.T) {
	for _, method := range []string{"WaterlooWorks", "waterlooworks", "  ", ""} {
		fields := mapping(map[string]string{
			models.KeyMethod:      method,
			models.KeyExternalURL: "http://example.com/apply",
		})
		items := Compose(fields, models.DefaultSettings())
		for _, it := range items {
			if it.Key == models.KeyMethod || it.Key == models.KeyExternalURL {
				t.Errorf("method %q produced item %+v, want exclusion", method, it)
			}
		}
	}
}

func TestCompose_MethodWithExternalURL(t *testing.T) {
	fields := mapping(map[string]string{
		models.KeyMethod:      "Email",
		models.KeyExternalURL: "http://example.com/apply",
	})
	items := Compose(fields, models.DefaultSettings())
	got := keys(items)
	want := []string{models.KeyMethod, models.KeyExternalURL}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if !items[1].IsLink {
		t.Error("external_url item not flagged as link")
	}
}

func TestCompose_FixedOrderIndependentOfSettingsOrder(t *testing.T) {
	fields := mapping(map[string]string{
		models.KeyDuration: "4 months",
		models.KeyCity:     "Waterloo",
		models.KeyProvince: "ON",
		models.KeyDeadline: "Feb 10, 2026",
	})
	cfg := models.DefaultSettings()
	cfg.PriorityKeys = []string{models.KeyDeadline, models.KeyLocation, models.KeyDuration}

	got := keys(Compose(fields, cfg))
	want := []string{models.KeyDuration, models.KeyLocation, models.KeyDeadline}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want fixed order %v", got, want)
	}
}

func TestCompose_GatedByPriorityList(t *testing.T) {
	fields := mapping(map[string]string{
		models.KeyDuration: "4 months",
		models.KeyDeadline: "Feb 10, 2026",
	})
	cfg := models.DefaultSettings()
	cfg.PriorityKeys = []string{models.KeyDuration}

	got := keys(Compose(fields, cfg))
	if !reflect.DeepEqual(got, []string{models.KeyDuration}) {
		t.Errorf("keys = %v, want duration only", got)
	}
}

func TestCompose_SynonymSets(t *testing.T) {
	fields := mapping(map[string]string{
		models.KeySalary:  "$25/hr",
		models.KeyApplyBy: "March 1, 2026",
	})
	items := Compose(fields, models.DefaultSettings())
	got := keys(items)
	want := []string{models.KeyCompensation, models.KeyDeadline}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestCompose_EmptyMapping(t *testing.T) {
	if items := Compose(models.FieldMapping{}, models.DefaultSettings()); len(items) != 0 {
		t.Errorf("items = %+v, want none", items)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	fields := mapping(map[string]string{
		models.KeyDuration: "4 months",
		models.KeyCity:     "Waterloo",
		models.KeyProvince: "ON",
	})
	cfg := models.DefaultSettings()
	first := Compose(fields, cfg)
	second := Compose(fields, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("compose not idempotent: %+v vs %+v", first, second)
	}
}
