package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyCart          = "cart"
	KeyCartItemID    = "cartItemId"
	KeyCartItemName  = "cartItemName"
	KeyCartItems     = "cartItems"
	KeyQuantity      = "quantity"
	KeySalonID       = "salonId"
	KeyTotal         = "total"
	KeySeverity      = "severity"
	KeySnapshotKey   = "snapshotKey"
	KeyPathValues    = "pathValues"
)
