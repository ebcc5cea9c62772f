package router

import (
	"net/http"

	auth "item_simulator/internal/auth/controller"
	character "item_simulator/internal/character/controller"
	inventory "item_simulator/internal/inventory/controller"
	item "item_simulator/internal/item/controller"
	"item_simulator/internal/service/middleware"
	shop "item_simulator/internal/shop/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(
	guard *middleware.AuthGuard,
	authHandler *auth.AuthHandler,
	characterHandler *character.CharacterHandler,
	inventoryHandler *inventory.InventoryHandler,
	itemHandler *item.ItemHandler,
	shopHandler *shop.ShopHandler,
) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	protect := func(h http.HandlerFunc) http.Handler {
		return guard.Protect(h)
	}

	router.HandleFunc(api+"/sign-up", authHandler.SignUp).Methods("POST")
	router.HandleFunc(api+"/sign-in", authHandler.SignIn).Methods("POST")

	router.Handle(api+"/characters/add", protect(characterHandler.CreateCharacter)).Methods("POST")
	router.Handle(api+"/characters/{characterId}", protect(characterHandler.DeleteCharacter)).Methods("DELETE")
	router.HandleFunc(api+"/characters/{characterId}", characterHandler.GetCharacterDetail).Methods("GET") // Public, money only for the owner
	router.Handle(api+"/earn-money/{characterId}", protect(characterHandler.EarnMoney)).Methods("GET")

	router.Handle(api+"/inv/{characterId}", protect(inventoryHandler.ListInventory)).Methods("GET")
	router.HandleFunc(api+"/inv/{characterId}/equipped-items", inventoryHandler.ListEquipped).Methods("GET") // Public
	router.Handle(api+"/inv/{characterId}/equip", protect(inventoryHandler.EquipItem)).Methods("POST")
	router.Handle(api+"/inv/{characterId}/unequip", protect(inventoryHandler.UnequipItem)).Methods("DELETE")

	router.HandleFunc(api+"/items/add", itemHandler.CreateItem).Methods("POST")
	router.HandleFunc(api+"/items/update/{itemId}", itemHandler.UpdateItem).Methods("PATCH")
	router.HandleFunc(api+"/items/get", itemHandler.ListItems).Methods("GET")
	router.HandleFunc(api+"/items/get/{item}", itemHandler.GetItemDetail).Methods("GET")

	router.Handle(api+"/shop/buy/{characterId}", protect(shopHandler.BuyItems)).Methods("POST")
	router.Handle(api+"/shop/sell/{characterId}/{item}/{count}", protect(shopHandler.SellItem)).Methods("DELETE")
	return router
}
