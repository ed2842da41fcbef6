package constant

const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// order responses
const (
	MsgListOrdersSuccess  = "Get all orders successfully!"
	MsgListOrdersFailed   = "Failed to retrieve orders!"
	MsgCreateOrderSuccess = "Create order successfully!"
	MsgCreateOrderFailed  = "Failed to create order!"
	MsgGetOrderSuccess    = "Get order successfully!"
	MsgGetOrderFailed     = "Failed to retrieve order!"
	MsgUpdateOrderSuccess = "Update order successfully!"
	MsgUpdateOrderInvalid = "Update order failed"
	MsgUpdateOrderFailed  = "Failed to update order!"
	MsgDeleteOrderSuccess = "Delete order successfully!"
	MsgDeleteOrderFailed  = "Failed to delete order!"
	MsgInvalidOrderID     = "Invalid order id!"
)

// order detail responses
const (
	MsgListOrderDetailsSuccess  = "Get all order details successfully!"
	MsgListOrderDetailsFailed   = "Failed to retrieve order details!"
	MsgCreateOrderDetailSuccess = "Create order detail successfully!"
	MsgCreateOrderDetailFailed  = "Failed to create order detail!"
	MsgGetOrderDetailSuccess    = "Get order detail successfully!"
	MsgGetOrderDetailFailed     = "Failed to retrieve order detail!"
	MsgUpdateOrderDetailSuccess = "Update order detail successfully!"
	MsgUpdateOrderDetailInvalid = "Update order detail failed"
	MsgUpdateOrderDetailFailed  = "Failed to update order detail!"
	MsgDeleteOrderDetailSuccess = "Delete order detail successfully!"
	MsgDeleteOrderDetailFailed  = "Failed to delete order detail!"
	MsgInvalidOrderDetailID     = "Invalid order detail id!"
)

const (
	MsgInternalServerError = "Internal server error!"
	MsgRouteNotFound       = "Not found!"
	MsgMethodNotAllowed    = "Method not allowed!"
	MsgHealthy             = "OK"
	MsgUnhealthy           = "Database unavailable!"
)
