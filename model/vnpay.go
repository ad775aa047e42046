package model

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	BaseURL    string
	ReturnURL  string
	IPNURL     string
}

type PaymentRequest struct {
	Amount    int64  `json:"amount"`
	OrderInfo string `json:"orderInfo"`
	TxnRef    string `json:"txnRef"`
	IPAddr    string `json:"ipAddr"`
}

type PaymentResponse struct {
	IsSuccess    bool   `json:"isSuccess"`
	TxnRef       string `json:"txnRef"`
	Amount       int64  `json:"amount"`
	ResponseCode string `json:"responseCode"` // "00" = success
	BankCode     string `json:"bankCode"`
	GatewayTxn   string `json:"gatewayTxn"`
	Message      string `json:"message"`
}

// CallbackData is the flat set of vnp_* fields parsed from a gateway redirect.
type CallbackData struct {
	TxnRef        string `json:"vnp_TxnRef"`
	ResponseCode  string `json:"vnp_ResponseCode"`
	Amount        int64  `json:"vnp_Amount"` // already divided by 100
	BankCode      string `json:"vnp_BankCode"`
	TransactionNo string `json:"vnp_TransactionNo"`
	PayDate       string `json:"vnp_PayDate"`
	OrderInfo     string `json:"vnp_OrderInfo"`
}
