package database

import (
	"log"

	authModel "tpims_backend/internals/features/users/auth/model"
	educationModel "tpims_backend/internals/features/education/model"
	geoModel "tpims_backend/internals/features/geographic/model"
	healthModel "tpims_backend/internals/features/health/maternal/model"
	profileModel "tpims_backend/internals/features/profiles/profile/model"
	userModel "tpims_backend/internals/features/users/user/model"
)

// Migrate keeps the schema in sync on boot. Profile IDs are assigned by
// the application (year-prefixed scheme), so profiles has no sequence.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&profileModel.ProfileModel{},
		&profileModel.PartnerModel{},
		&healthModel.MaternalHealthModel{},
		&healthModel.VisitScheduleModel{},
		&educationModel.EducationModel{},
		&geoModel.RegionModel{},
		&geoModel.ProvinceModel{},
		&geoModel.MunicipalityModel{},
		&geoModel.BarangayModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
