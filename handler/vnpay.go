package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"cinema_booking/config"
	"cinema_booking/model"
)

// VNPay gateway service
type VNPay struct {
	Config model.VNPayConfig
}

func NewVNPay() *VNPay {
	return &VNPay{
		Config: model.VNPayConfig{
			TmnCode:    config.Config("VNP_TMNCODE"),
			HashSecret: config.Config("VNP_HASHSECRET"),
			BaseURL:    config.Config("VNP_URL"),
			ReturnURL:  config.Config("APP_URL") + "/vnpay/return",
			IPNURL:     config.Config("APP_URL") + "/vnpay/ipn",
		},
	}
}

// BuildPaymentUrl assembles the redirect URL for the hosted payment page.
// Amount is in VND; the gateway expects it multiplied by 100.
func (v *VNPay) BuildPaymentUrl(req model.PaymentRequest) (string, error) {
	params := url.Values{}
	params.Add("vnp_Version", "2.1.0")
	params.Add("vnp_Command", "pay")
	params.Add("vnp_TmnCode", v.Config.TmnCode)
	params.Add("vnp_Amount", strconv.FormatInt(req.Amount*100, 10))
	params.Add("vnp_CreateDate", time.Now().Format("20060102150405"))
	params.Add("vnp_CurrCode", "VND")
	params.Add("vnp_IpAddr", req.IPAddr)
	params.Add("vnp_Locale", "vn")
	params.Add("vnp_OrderInfo", req.OrderInfo)
	params.Add("vnp_OrderType", "other")
	params.Add("vnp_ReturnUrl", v.Config.ReturnURL)
	params.Add("vnp_TxnRef", req.TxnRef)
	params.Add("vnp_ExpireDate", time.Now().Add(15*time.Minute).Format("20060102150405"))

	// Encode sorts keys; the secure hash covers the sorted query.
	query := params.Encode()
	hash := v.generateHash(query)
	fullQuery := query + "&vnp_SecureHash=" + hash

	return v.Config.BaseURL + "?" + fullQuery, nil
}

// VerifyReturnUrl checks the secure hash of a gateway redirect and maps the
// result. Success is determined solely by vnp_ResponseCode == "00"; every
// other code is reported uniformly as a failure.
func (v *VNPay) VerifyReturnUrl(query url.Values) model.PaymentResponse {
	secureHash := query.Get("vnp_SecureHash")
	query.Del("vnp_SecureHash")
	query.Del("vnp_SecureHashType")

	expectedHash := v.generateHash(query.Encode())
	if secureHash != expectedHash {
		return model.PaymentResponse{IsSuccess: false, Message: "Invalid hash"}
	}

	code := query.Get("vnp_ResponseCode")
	txnRef := query.Get("vnp_TxnRef")
	amount, _ := strconv.ParseInt(query.Get("vnp_Amount"), 10, 64)

	if code == "00" {
		return model.PaymentResponse{
			IsSuccess:    true,
			TxnRef:       txnRef,
			Amount:       amount / 100,
			ResponseCode: code,
			BankCode:     query.Get("vnp_BankCode"),
			GatewayTxn:   query.Get("vnp_TransactionNo"),
		}
	}

	return model.PaymentResponse{
		IsSuccess:    false,
		TxnRef:       txnRef,
		ResponseCode: code,
		Message:      "Payment failed",
	}
}

// VerifyIPN validates a server-to-server settlement notification.
func (v *VNPay) VerifyIPN(query url.Values) model.PaymentResponse {
	secureHash := query.Get("vnp_SecureHash")
	query.Del("vnp_SecureHash")
	query.Del("vnp_SecureHashType")

	expectedHash := v.generateHash(query.Encode())
	if secureHash != expectedHash {
		return model.PaymentResponse{IsSuccess: false, Message: "Invalid IPN hash"}
	}

	if query.Get("vnp_ResponseCode") == "00" {
		return model.PaymentResponse{
			IsSuccess:    true,
			TxnRef:       query.Get("vnp_TxnRef"),
			ResponseCode: "00",
			GatewayTxn:   query.Get("vnp_TransactionNo"),
		}
	}

	return model.PaymentResponse{IsSuccess: false, TxnRef: query.Get("vnp_TxnRef"), Message: "IPN failed"}
}

// SignQuery exposes hashing for building test fixtures and signed links.
func (v *VNPay) SignQuery(query url.Values) string {
	return v.generateHash(query.Encode())
}

func (v *VNPay) generateHash(data string) string {
	h := hmac.New(sha512.New, []byte(v.Config.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// ParseCallbackData flattens the vnp_* fields of a callback into a DTO.
func ParseCallbackData(query url.Values) model.CallbackData {
	amount, _ := strconv.ParseInt(query.Get("vnp_Amount"), 10, 64)
	return model.CallbackData{
		TxnRef:        query.Get("vnp_TxnRef"),
		ResponseCode:  query.Get("vnp_ResponseCode"),
		Amount:        amount / 100,
		BankCode:      query.Get("vnp_BankCode"),
		TransactionNo: query.Get("vnp_TransactionNo"),
		PayDate:       query.Get("vnp_PayDate"),
		OrderInfo:     query.Get("vnp_OrderInfo"),
	}
}
