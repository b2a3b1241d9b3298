package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// SnapGateway is the slice of the Midtrans Snap client the checkout flow
// uses; tests substitute a fake.
type SnapGateway interface {
	CreateTransaction(req *snap.Request) (*snap.Response, error)
}

type midtransGateway struct {
	client snap.Client
}

// NewMidtransGateway builds a Snap client against sandbox or production.
func NewMidtransGateway(serverKey string, production bool) SnapGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &midtransGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
