package model

import "context"

// CodeNotifier delivers a login confirmation code to the account owner.
type CodeNotifier interface {
	DeliverCode(ctx context.Context, identifier, code string) error
}
