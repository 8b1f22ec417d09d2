package main

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/models"
	"github.com/lvicens/blanca-med/backend/internal/search"
)

func kua(v float64) *float64 { return &v }

// The curated dataset from the latest allergy panel. Entries with
// is_allergic=false were explicitly tested and confirmed tolerated;
// untested foods are simply absent.
var dataset = []models.Allergen{
	{Name: "Gamba", IsAllergic: true, Intensity: "high", Category: "Crustaceans", KUAPerLiter: kua(24.5)},
	{Name: "Langostino", IsAllergic: true, Intensity: "high", Category: "Crustaceans", KUAPerLiter: kua(19.8)},
	{Name: "Cangrejo", IsAllergic: true, Intensity: "medium", Category: "Crustaceans", KUAPerLiter: kua(8.1)},
	{Name: "Langosta", IsAllergic: false, Intensity: "low", Category: "Crustaceans"},
	{Name: "Fresa", IsAllergic: true, Intensity: "medium", Category: "Fruits", KUAPerLiter: kua(3.2)},
	{Name: "Kiwi", IsAllergic: true, Intensity: "medium", Category: "Fruits", KUAPerLiter: kua(4.7)},
	{Name: "Melocoton", IsAllergic: true, Intensity: "high", Category: "Fruits", KUAPerLiter: kua(12.3)},
	{Name: "Aguacate", IsAllergic: true, Intensity: "low", Category: "Fruits", KUAPerLiter: kua(1.9)},
	{Name: "Manzana", IsAllergic: false, Intensity: "low", Category: "Fruits"},
	{Name: "Pera", IsAllergic: false, Intensity: "low", Category: "Fruits"},
	{Name: "Platano", IsAllergic: false, Intensity: "low", Category: "Fruits"},
	{Name: "Naranja", IsAllergic: false, Intensity: "low", Category: "Fruits"},
	{Name: "Sandia", IsAllergic: false, Intensity: "low", Category: "Fruits"},
	{Name: "Tomate", IsAllergic: false, Intensity: "low", Category: "Vegetables"},
	{Name: "Zanahoria", IsAllergic: false, Intensity: "low", Category: "Vegetables"},
	{Name: "Calabacin", IsAllergic: false, Intensity: "low", Category: "Vegetables"},
	{Name: "Pimiento", IsAllergic: true, Intensity: "low", Category: "Vegetables", KUAPerLiter: kua(0.8)},
	{Name: "Espinaca", IsAllergic: false, Intensity: "low", Category: "Vegetables"},
	{Name: "Nuez", IsAllergic: true, Intensity: "high", Category: "Tree nuts", KUAPerLiter: kua(41.0)},
	{Name: "Almendra", IsAllergic: true, Intensity: "high", Category: "Tree nuts", KUAPerLiter: kua(33.6)},
	{Name: "Avellana", IsAllergic: true, Intensity: "high", Category: "Tree nuts", KUAPerLiter: kua(27.2)},
	{Name: "Anacardo", IsAllergic: true, Intensity: "medium", Category: "Tree nuts", KUAPerLiter: kua(9.4)},
	{Name: "Pistacho", IsAllergic: true, Intensity: "medium", Category: "Tree nuts", KUAPerLiter: kua(7.7)},
	{Name: "Castana", IsAllergic: false, Intensity: "low", Category: "Tree nuts"},
	{Name: "Merluza", IsAllergic: false, Intensity: "low", Category: "Fish"},
	{Name: "Salmon", IsAllergic: false, Intensity: "low", Category: "Fish"},
	{Name: "Atun", IsAllergic: false, Intensity: "low", Category: "Fish"},
	{Name: "Anchoa", IsAllergic: true, Intensity: "medium", Category: "Fish", KUAPerLiter: kua(5.5)},
	{Name: "Lenteja", IsAllergic: true, Intensity: "low", Category: "Legumes", KUAPerLiter: kua(1.2)},
	{Name: "Garbanzo", IsAllergic: false, Intensity: "low", Category: "Legumes"},
	{Name: "Judia blanca", IsAllergic: false, Intensity: "low", Category: "Legumes"},
	{Name: "Cacahuete", IsAllergic: true, Intensity: "high", Category: "Legumes", KUAPerLiter: kua(52.4)},
	{Name: "Soja", IsAllergic: true, Intensity: "low", Category: "Legumes", KUAPerLiter: kua(2.1)},
	{Name: "Leche de vaca", IsAllergic: false, Intensity: "low", Category: "Dairy"},
	{Name: "Huevo", IsAllergic: false, Intensity: "low", Category: "Egg"},
}

var protocols = []models.EmergencyProtocol{
	{
		Title:    "Anaphylaxis",
		Severity: "high",
		Summary:  "Severe whole-body reaction. Act immediately, then call emergency services.",
		Steps: models.JSONBStringArray{
			"Administer the adrenaline auto-injector into the outer thigh",
			"Call 112 and report an anaphylactic reaction",
			"Lay the patient flat with legs raised; do not stand them up",
			"If no improvement after 5 minutes, administer the second auto-injector",
			"Stay with the patient until the ambulance arrives",
		},
	},
	{
		Title:    "Moderate reaction (hives, swelling)",
		Severity: "medium",
		Summary:  "Visible skin reaction without breathing difficulty.",
		Steps: models.JSONBStringArray{
			"Give the prescribed antihistamine",
			"Watch for breathing difficulty or throat tightness",
			"If symptoms spread or worsen, treat as anaphylaxis",
		},
	},
	{
		Title:    "Mild reaction (itching)",
		Severity: "low",
		Summary:  "Localized itching or mild discomfort after contact.",
		Steps: models.JSONBStringArray{
			"Rinse mouth and wash the contact area",
			"Give the prescribed antihistamine if discomfort persists",
			"Note the food and time for the allergist",
		},
	},
}

func main() {
	// Validate the dataset through the lookup engine before touching the
	// database; a duplicate or malformed entry must never be seeded.
	records := make([]search.Record, len(dataset))
	for i, a := range dataset {
		records[i] = a.SearchRecord()
	}
	if _, err := search.NewStore(records); err != nil {
		log.Fatalf("dataset failed validation: %v", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM allergens").Error; err != nil {
			return err
		}
		for i := range dataset {
			if err := tx.Create(&dataset[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM emergency_protocols").Error; err != nil {
			return err
		}
		for i := range protocols {
			if err := tx.Create(&protocols[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("seeded %d allergens and %d protocols", len(dataset), len(protocols))
}
