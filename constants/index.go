package constants

const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_CUSTOMER = "CUSTOMER"
)

// Order / payment statuses
const (
	ORDER_PENDING            = "PENDING"
	ORDER_PAID               = "PAID"
	ORDER_PENDING_SETTLEMENT = "PENDING_SETTLEMENT"
	ORDER_FAILED             = "FAILED"
	ORDER_CANCELLED          = "CANCELLED"
	ORDER_EXPIRED            = "EXPIRED"

	PAYMENT_CASH  = "CASH"
	PAYMENT_VNPAY = "VNPAY"
)

// Seat statuses as rendered in the seat map
const (
	SEAT_AVAILABLE = "AVAILABLE"
	SEAT_BOOKED    = "BOOKED"
)

// Common response messages
const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input"
	ERROR_CREATE               = "Cannot create record"
	ERROR_EDIT                 = "Cannot update record"
	ERROR_DELETE               = "Cannot delete record"
	ERROR_NOT_FOUND            = "Record not found"
	ERROR_FORBIDDEN            = "Forbidden"

	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Invalid password"
	ACCOUNT_NOT_ACTIVE       = "Account is deactivated"
	CAN_NOT_HASH_PASSWORD    = "Cannot hash password"
	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"
)
