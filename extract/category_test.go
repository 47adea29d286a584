package extract

import (
	"testing"

	"github.com/pricelens/pricelens/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  core.Category
	}{
		{
			name:  "phone",
			title: "Apple iPhone 17 Pro 5G Smartphone",
			want:  core.CategoryPhone,
		},
		{
			name:  "case named after the phone it fits",
			title: "Spigen Back Cover for Apple iPhone 17 Pro",
			want:  core.CategoryPhoneCase,
		},
		{
			name:  "phone keyword plus flip hint",
			title: "Flip Mobile Pouch for Galaxy S24",
			want:  core.CategoryPhoneCase,
		},
		{
			name:  "screen protector",
			title: "Tempered Glass for iPhone 17 Pro",
			want:  core.CategoryScreenProtector,
		},
		{
			name:  "charger accessory",
			title: "Apple 20W USB-C Power Adapter",
			want:  core.CategoryAccessory,
		},
		{
			name:  "skincare",
			title: "CeraVe Moisturizing Cream 50g",
			want:  core.CategorySkincare,
		},
		{
			name:  "electronics",
			title: "Samsung Galaxy Tab S9 Tablet",
			want:  core.CategoryElectronics,
		},
		{
			name:  "substring containment is deliberate",
			title: "Atomic Habits Hardcover Book",
			want:  core.CategoryPhoneCase, // "cover" inside "Hardcover"
		},
		{
			name:  "general",
			title: "Atomic Habits by James Clear",
			want:  core.CategoryGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.title); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
