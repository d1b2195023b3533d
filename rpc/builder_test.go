package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWithoutParams(t *testing.T) {
	data, err := Encode(MethodGetStatus, 5, "x", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","method":"getStatus","id":5,"password":"x"}`, string(data))
}

func TestEncodeWithoutPassword(t *testing.T) {
	data, err := Save(0, "", nil).Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","method":"save","id":0}`, string(data))
}

func TestEmptyParamsAreDropped(t *testing.T) {
	params := Params{}.SetString("address", "").SetUint64("firstBlockIndex", 0).SetStrings("addresses", nil)
	assert.Empty(t, params)

	req := GetBalance(1, "pw", params)
	assert.Nil(t, req.Params)

	data, err := req.Encode()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "params")
}

func TestOptionalParamsIncludedWhenPresent(t *testing.T) {
	data, err := GetBalance(2, "pw", Params{}.SetString("address", "addr1")).Encode()
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.JSONEq(t, `{"address":"addr1"}`, string(envelope["params"]))
}

func TestRequiredParamsAlwaysIncluded(t *testing.T) {
	params := Params{}.
		Set("anonymity", uint64(0)).
		Set("fee", uint64(0)).
		SetString("paymentId", "").
		SetUint64("unlockTime", 0)

	data, err := SendTransaction(3, "pw", params).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"jsonrpc": "2.0",
		"method": "sendTransaction",
		"id": 3,
		"password": "pw",
		"params": {"anonymity": 0, "fee": 0}
	}`, string(data))
}

func TestForwardingFunctionsUseTheirMethodName(t *testing.T) {
	builders := map[string]BuildFunc{
		MethodReset:                           Reset,
		MethodSave:                            Save,
		MethodGetViewKey:                      GetViewKey,
		MethodGetSpendKeys:                    GetSpendKeys,
		MethodGetStatus:                       GetStatus,
		MethodGetAddresses:                    GetAddresses,
		MethodCreateAddress:                   CreateAddress,
		MethodDeleteAddress:                   DeleteAddress,
		MethodGetBalance:                      GetBalance,
		MethodGetBlockHashes:                  GetBlockHashes,
		MethodGetTransactionHashes:            GetTransactionHashes,
		MethodGetTransactions:                 GetTransactions,
		MethodGetUnconfirmedTransactionHashes: GetUnconfirmedTransactionHashes,
		MethodGetTransaction:                  GetTransaction,
		MethodSendTransaction:                 SendTransaction,
		MethodCreateDelayedTransaction:        CreateDelayedTransaction,
		MethodGetDelayedTransactionHashes:     GetDelayedTransactionHashes,
		MethodDeleteDelayedTransaction:        DeleteDelayedTransaction,
		MethodSendDelayedTransaction:          SendDelayedTransaction,
		MethodSendFusionTransaction:           SendFusionTransaction,
		MethodEstimateFusion:                  EstimateFusion,
		MethodGetMnemonicSeed:                 GetMnemonicSeed,
	}
	require.Len(t, builders, len(Methods()))

	for _, method := range Methods() {
		build, ok := builders[method]
		require.True(t, ok, method)

		req := build(7, "secret", nil)
		assert.Equal(t, Version, req.JSONRPC)
		assert.Equal(t, method, req.Method)
		assert.Equal(t, uint64(7), req.ID)
		assert.Equal(t, "secret", req.Password)
		assert.Nil(t, req.Params)
	}
}

func TestNilParams(t *testing.T) {
	var params Params

	req := Build(MethodSave, 1, "", params)
	assert.Nil(t, req.Params)

	assert.Panics(t, func() { params.Set("address", "a") })
	assert.NotPanics(t, func() { Params{}.Set("address", "a") })
}
