// file: internals/features/donations/service/midtrans.go
package service

import (
	"egitimportal_backend/internals/features/donations/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans: uygulama açılışında çağrılır (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken: Snap token + redirect_url üretir
func GenerateSnapToken(d model.DonationModel) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: int64(d.DonationAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: d.DonationDonorName,
			Email: d.DonationDonorEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
