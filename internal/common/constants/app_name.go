package constants

const (
	APP_CART_SERVICE = "cart-service"
	APP_MAIN_SALON   = "main salon"
)
