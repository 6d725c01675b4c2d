package main

import (
	"fundme/sdk"
)

// cachedEnv and cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop memoized data.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so helpers (intents, sender) all see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// TransferAllow is the value a caller attached through a transfer.allow intent.
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// getFirstTransferAllow returns the first transfer.allow intent of the call, nil if none.
func getFirstTransferAllow() *TransferAllow {
	env := currentEnv()
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range env.Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := sdk.Asset(intent.Args["token"])
		if !token.IsSupported() {
			sdk.Revert("invalid intent asset", ErrInvalidAsset)
		}
		limit, err := ParseAmount(intent.Args["limit"])
		if err != nil {
			sdk.Abort("invalid intent limit")
		}
		cachedTransfer = &TransferAllow{Limit: limit, Token: token}
		return cachedTransfer
	}
	return nil
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress is the ledger account holding the contract's funds.
func contractAddress() sdk.Address {
	return sdk.ContractAddress(currentEnv().ContractId)
}
