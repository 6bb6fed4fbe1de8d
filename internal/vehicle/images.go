package vehicle

const (
	DefaultImage      = "assets/cars/placeholder.jpg"
	DefaultBackground = "assets/backgrounds/showroom.jpg"
)

var images = map[string]string{
	"ranger":    "assets/cars/ford-ranger.jpg",
	"corolla":   "assets/cars/toyota-corolla.jpg",
	"cx5":       "assets/cars/mazda-cx5.jpg",
	"golf":      "assets/cars/vw-golf.jpg",
	"hilux":     "assets/cars/toyota-hilux.jpg",
	"model3":    "assets/cars/tesla-model3.jpg",
	"outlander": "assets/cars/mitsubishi-outlander.jpg",
	"i30":       "assets/cars/hyundai-i30.jpg",
}

var backgrounds = []string{
	"assets/backgrounds/showroom.jpg",
	"assets/backgrounds/coast-road.jpg",
	"assets/backgrounds/city-night.jpg",
	"assets/backgrounds/outback.jpg",
}

// ImageFor maps an image key to its asset, or DefaultImage when the key is unknown.
func ImageFor(key string) string {
	if p, ok := images[key]; ok {
		return p
	}

	return DefaultImage
}

func BackgroundFor(index int) string {
	if index < 0 || index >= len(backgrounds) {
		return DefaultBackground
	}

	return backgrounds[index]
}
