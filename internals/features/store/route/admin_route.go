// file: internals/features/store/route/admin_route.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	storeCtl "egitimportal_backend/internals/features/store/controller"
	helperOSS "egitimportal_backend/internals/helpers/oss"
	authMiddleware "egitimportal_backend/internals/middlewares/auth"
)

func newController(db *gorm.DB) *storeCtl.StoreController {
	oss, err := helperOSS.NewClientFromEnv()
	if err != nil {
		log.Printf("[STORE] OSS devre dışı: %v", err)
		oss = nil
	}
	return storeCtl.NewStoreController(db, nil, oss)
}

func StoreAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("mağaza yönetimi"),
			constants.AdminOnly...,
		),
	)

	base.Post("/store/items", ctl.CreateItem)
	base.Patch("/store/items/:id", ctl.PatchItem)
	base.Put("/store/items/:id/image", ctl.UploadItemImage)
	base.Get("/store/orders", ctl.ListOrders)
	base.Patch("/store/orders/:id/status", ctl.SetOrderStatus)
}

func StoreUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := newController(db)
	api.Get("/store/items", ctl.ListItems)
	api.Post("/store/items/:id/redeem", ctl.Redeem)
	api.Get("/store/orders/me", ctl.MyOrders)
}
