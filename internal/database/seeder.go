package database

import (
	"log"

	"airmen-backend/internal/model"
	"airmen-backend/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll creates the first administrator account and a couple of sample
// records so a fresh install has something on screen. FirstOrCreate keeps
// it safe to run repeatedly.
func SeedAll(db *gorm.DB) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Name:      "System Administrator",
		ServiceNo: "00000",
		Password:  string(hashedPassword),
		Role:      "Admin",
	}
	db.FirstOrCreate(&admin, model.User{ServiceNo: admin.ServiceNo})

	spouse := "Ayesha Begum"
	samples := []model.Airman{
		{
			BDNo:          "123456",
			Rank:          model.RankSgt,
			Trade:         model.TradeRadOp,
			Flight:        model.FlightRadar,
			NameEn:        "Md. Rahim Uddin",
			NameBn:        "মোঃ রহিম উদ্দিন",
			Mobile:        "01700000001",
			DOB:           "1990-03-12",
			DOE:           "2008-06-01",
			ArrivalDate:   "2021-01-15",
			HeightFeet:    5,
			HeightInches:  7,
			BloodGroup:    "O+",
			Religion:      "Islam",
			IsMarried:     true,
			SpouseName:    &spouse,
			Accommodation: model.AccomSgtMess,
			Status:        model.StatusActive,
		},
		{
			BDNo:          "654321",
			Rank:          model.RankAC,
			Trade:         model.TradeSecAsstGD,
			Flight:        model.FlightAdmin,
			NameEn:        "Sujon Chandra Das",
			NameBn:        "সুজন চন্দ্র দাস",
			Mobile:        "01700000002",
			DOB:           "2001-11-25",
			DOE:           "2020-02-10",
			ArrivalDate:   "2023-08-01",
			HeightFeet:    5,
			HeightInches:  5,
			BloodGroup:    "B+",
			Religion:      "Hinduism",
			Accommodation: model.AccomAirmenMess,
			Status:        model.StatusActive,
		},
	}

	for i := range samples {
		service.NormalizeAirman(&samples[i])
		db.FirstOrCreate(&samples[i], model.Airman{BDNo: samples[i].BDNo})
	}

	log.Println("seed complete: admin 00000/admin123 and sample airmen ready")
}
