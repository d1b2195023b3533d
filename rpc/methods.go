package rpc

// walletd method names
const (
	MethodReset                           = "reset"
	MethodSave                            = "save"
	MethodGetViewKey                      = "getViewKey"
	MethodGetSpendKeys                    = "getSpendKeys"
	MethodGetStatus                       = "getStatus"
	MethodGetAddresses                    = "getAddresses"
	MethodCreateAddress                   = "createAddress"
	MethodDeleteAddress                   = "deleteAddress"
	MethodGetBalance                      = "getBalance"
	MethodGetBlockHashes                  = "getBlockHashes"
	MethodGetTransactionHashes            = "getTransactionHashes"
	MethodGetTransactions                 = "getTransactions"
	MethodGetUnconfirmedTransactionHashes = "getUnconfirmedTransactionHashes"
	MethodGetTransaction                  = "getTransaction"
	MethodSendTransaction                 = "sendTransaction"
	MethodCreateDelayedTransaction        = "createDelayedTransaction"
	MethodGetDelayedTransactionHashes     = "getDelayedTransactionHashes"
	MethodDeleteDelayedTransaction        = "deleteDelayedTransaction"
	MethodSendDelayedTransaction          = "sendDelayedTransaction"
	MethodSendFusionTransaction           = "sendFusionTransaction"
	MethodEstimateFusion                  = "estimateFusion"
	MethodGetMnemonicSeed                 = "getMnemonicSeed"
)

// BuildFunc is the signature shared by the forwarding builders below
type BuildFunc func(id uint64, password string, params Params) Request

// Methods returns every method name walletd answers
func Methods() []string {
	return []string{
		MethodReset,
		MethodSave,
		MethodGetViewKey,
		MethodGetSpendKeys,
		MethodGetStatus,
		MethodGetAddresses,
		MethodCreateAddress,
		MethodDeleteAddress,
		MethodGetBalance,
		MethodGetBlockHashes,
		MethodGetTransactionHashes,
		MethodGetTransactions,
		MethodGetUnconfirmedTransactionHashes,
		MethodGetTransaction,
		MethodSendTransaction,
		MethodCreateDelayedTransaction,
		MethodGetDelayedTransactionHashes,
		MethodDeleteDelayedTransaction,
		MethodSendDelayedTransaction,
		MethodSendFusionTransaction,
		MethodEstimateFusion,
		MethodGetMnemonicSeed,
	}
}

// Reset builds a reset request
func Reset(id uint64, password string, params Params) Request {
	return Build(MethodReset, id, password, params)
}

// Save builds a save request
func Save(id uint64, password string, params Params) Request {
	return Build(MethodSave, id, password, params)
}

// GetViewKey builds a getViewKey request
func GetViewKey(id uint64, password string, params Params) Request {
	return Build(MethodGetViewKey, id, password, params)
}

// GetSpendKeys builds a getSpendKeys request
func GetSpendKeys(id uint64, password string, params Params) Request {
	return Build(MethodGetSpendKeys, id, password, params)
}

// GetStatus builds a getStatus request
func GetStatus(id uint64, password string, params Params) Request {
	return Build(MethodGetStatus, id, password, params)
}

// GetAddresses builds a getAddresses request
func GetAddresses(id uint64, password string, params Params) Request {
	return Build(MethodGetAddresses, id, password, params)
}

// CreateAddress builds a createAddress request
func CreateAddress(id uint64, password string, params Params) Request {
	return Build(MethodCreateAddress, id, password, params)
}

// DeleteAddress builds a deleteAddress request
func DeleteAddress(id uint64, password string, params Params) Request {
	return Build(MethodDeleteAddress, id, password, params)
}

// GetBalance builds a getBalance request
func GetBalance(id uint64, password string, params Params) Request {
	return Build(MethodGetBalance, id, password, params)
}

// GetBlockHashes builds a getBlockHashes request
func GetBlockHashes(id uint64, password string, params Params) Request {
	return Build(MethodGetBlockHashes, id, password, params)
}

// GetTransactionHashes builds a getTransactionHashes request
func GetTransactionHashes(id uint64, password string, params Params) Request {
	return Build(MethodGetTransactionHashes, id, password, params)
}

// GetTransactions builds a getTransactions request
func GetTransactions(id uint64, password string, params Params) Request {
	return Build(MethodGetTransactions, id, password, params)
}

// GetUnconfirmedTransactionHashes builds a getUnconfirmedTransactionHashes request
func GetUnconfirmedTransactionHashes(id uint64, password string, params Params) Request {
	return Build(MethodGetUnconfirmedTransactionHashes, id, password, params)
}

// GetTransaction builds a getTransaction request
func GetTransaction(id uint64, password string, params Params) Request {
	return Build(MethodGetTransaction, id, password, params)
}

// SendTransaction builds a sendTransaction request
func SendTransaction(id uint64, password string, params Params) Request {
	return Build(MethodSendTransaction, id, password, params)
}

// CreateDelayedTransaction builds a createDelayedTransaction request
func CreateDelayedTransaction(id uint64, password string, params Params) Request {
	return Build(MethodCreateDelayedTransaction, id, password, params)
}

// GetDelayedTransactionHashes builds a getDelayedTransactionHashes request
func GetDelayedTransactionHashes(id uint64, password string, params Params) Request {
	return Build(MethodGetDelayedTransactionHashes, id, password, params)
}

// DeleteDelayedTransaction builds a deleteDelayedTransaction request
func DeleteDelayedTransaction(id uint64, password string, params Params) Request {
	return Build(MethodDeleteDelayedTransaction, id, password, params)
}

// SendDelayedTransaction builds a sendDelayedTransaction request
func SendDelayedTransaction(id uint64, password string, params Params) Request {
	return Build(MethodSendDelayedTransaction, id, password, params)
}

// SendFusionTransaction builds a sendFusionTransaction request
func SendFusionTransaction(id uint64, password string, params Params) Request {
	return Build(MethodSendFusionTransaction, id, password, params)
}

// EstimateFusion builds a estimateFusion request
func EstimateFusion(id uint64, password string, params Params) Request {
	return Build(MethodEstimateFusion, id, password, params)
}

// GetMnemonicSeed builds a getMnemonicSeed request
func GetMnemonicSeed(id uint64, password string, params Params) Request {
	return Build(MethodGetMnemonicSeed, id, password, params)
}
