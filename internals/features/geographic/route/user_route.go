package route

import (
	geoController "tpims_backend/internals/features/geographic/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Reference data, read-only for every authenticated user.
// Mount example: GeographicRoutes(app.Group("/api/u"), db)
func GeographicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := geoController.NewGeographicController(db)

	geo := r.Group("/geo")
	geo.Get("/regions", ctrl.ListRegions)               // GET /api/u/geo/regions
	geo.Get("/provinces", ctrl.ListProvinces)           // GET /api/u/geo/provinces?reg_code=
	geo.Get("/municipalities", ctrl.ListMunicipalities) // GET /api/u/geo/municipalities?prov_code=
	geo.Get("/barangays", ctrl.ListBarangays)           // GET /api/u/geo/barangays?mun_code=
}
