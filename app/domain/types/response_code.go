/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// ResponseCode is the outcome of a ledger operation
type ResponseCode int32

const (
	Success ResponseCode = iota
	FailInvalid
	InvalidSignature
	PayerAccountNotFound
	NotSupported
	InvalidAccountId
	AccountDeleted
	InvalidAliasKey
	AliasAlreadyAssigned
	InvalidAccountAmounts
	AccountRepeatedInAccountAmounts
	TransferListSizeLimitExceeded
	TokenTransferListSizeLimitExceeded
	BatchSizeLimitExceeded
	EmptyTokenTransferAccountAmounts
	TokenIdRepeatedInTokenList
	TransfersNotZeroSumForToken
	AccountAmountTransfersOnlyAllowedForFungibleCommon
	InsufficientPayerBalance
	InsufficientAccountBalance
	InsufficientTokenBalance
	InsufficientSenderAccountBalanceForCustomFee
	InvalidTokenId
	TokenWasDeleted
	TokenIsPaused
	AccountFrozenForToken
	UnexpectedTokenDecimals
	InvalidNftId
	InvalidTokenNftSerialNumber
	SenderDoesNotOwnNftSerialNo
	TokenNotAssociatedToAccount
	TokenAlreadyAssociatedToAccount
	NoRemainingAutomaticAssociations
	TransactionRequiresZeroTokenBalances
	AccountIsTreasury
	SpenderDoesNotHaveAllowance
	AmountExceedsAllowance
	EmptyAllowances
	MaxAllowancesExceeded
	InvalidAllowanceOwnerId
	InvalidAllowanceSpenderId
	SpenderAccountSameAsOwner
	NegativeAllowanceAmount
	AmountExceedsTokenMaxSupply
	NftInFungibleTokenAllowances
	FungibleTokenInNftAllowances
	DelegatingSpenderCannotGrantApproveForAll
	DelegatingSpenderDoesNotHaveApproveForAll
	CustomFeeChargingExceededMaxRecursionDepth
	CustomFeeChargingExceededMaxAccountAmounts
	CustomFeeMustBePositive
	FractionDividesByZero
	FractionalFeeMaxAmountLessThanMinAmount
	RoyaltyFractionCannotExceedOne
	CustomFeesListTooLong
	InvalidCustomFeeCollector
	TokenNotAssociatedToFeeCollector
	InvalidTokenIdInCustomFees
	CustomFractionalFeeOnlyAllowedForFungibleCommon
	CustomRoyaltyFeeOnlyAllowedForNonFungibleUnique
	TokenHasNoFeeScheduleKey
	InvalidTreasuryAccountForToken
	InvalidTokenInitialSupply
	InvalidTokenDecimals
	InvalidTokenMaxSupply
	InvalidTokenMintAmount
	TokenMaxSupplyReached
	KeyRequired
	MemoTooLong
	InvalidMaxAutoAssociations
	InvalidInitialBalance
	InvalidTransferAccountId
	TransferAccountSameAsDeleteAccount
	MissingTokenName
	MissingTokenSymbol
	TokenNameTooLong
	TokenSymbolTooLong
)

var responseCodeNames = map[ResponseCode]string{
	Success:                                            "SUCCESS",
	FailInvalid:                                        "FAIL_INVALID",
	InvalidSignature:                                   "INVALID_SIGNATURE",
	PayerAccountNotFound:                               "PAYER_ACCOUNT_NOT_FOUND",
	NotSupported:                                       "NOT_SUPPORTED",
	InvalidAccountId:                                   "INVALID_ACCOUNT_ID",
	AccountDeleted:                                     "ACCOUNT_DELETED",
	InvalidAliasKey:                                    "INVALID_ALIAS_KEY",
	AliasAlreadyAssigned:                               "ALIAS_ALREADY_ASSIGNED",
	InvalidAccountAmounts:                              "INVALID_ACCOUNT_AMOUNTS",
	AccountRepeatedInAccountAmounts:                    "ACCOUNT_REPEATED_IN_ACCOUNT_AMOUNTS",
	TransferListSizeLimitExceeded:                      "TRANSFER_LIST_SIZE_LIMIT_EXCEEDED",
	TokenTransferListSizeLimitExceeded:                 "TOKEN_TRANSFER_LIST_SIZE_LIMIT_EXCEEDED",
	BatchSizeLimitExceeded:                             "BATCH_SIZE_LIMIT_EXCEEDED",
	EmptyTokenTransferAccountAmounts:                   "EMPTY_TOKEN_TRANSFER_ACCOUNT_AMOUNTS",
	TokenIdRepeatedInTokenList:                         "TOKEN_ID_REPEATED_IN_TOKEN_LIST",
	TransfersNotZeroSumForToken:                        "TRANSFERS_NOT_ZERO_SUM_FOR_TOKEN",
	AccountAmountTransfersOnlyAllowedForFungibleCommon: "ACCOUNT_AMOUNT_TRANSFERS_ONLY_ALLOWED_FOR_FUNGIBLE_COMMON",
	InsufficientPayerBalance:                           "INSUFFICIENT_PAYER_BALANCE",
	InsufficientAccountBalance:                         "INSUFFICIENT_ACCOUNT_BALANCE",
	InsufficientTokenBalance:                           "INSUFFICIENT_TOKEN_BALANCE",
	InsufficientSenderAccountBalanceForCustomFee:       "INSUFFICIENT_SENDER_ACCOUNT_BALANCE_FOR_CUSTOM_FEE",
	InvalidTokenId:                                     "INVALID_TOKEN_ID",
	TokenWasDeleted:                                    "TOKEN_WAS_DELETED",
	TokenIsPaused:                                      "TOKEN_IS_PAUSED",
	AccountFrozenForToken:                              "ACCOUNT_FROZEN_FOR_TOKEN",
	UnexpectedTokenDecimals:                            "UNEXPECTED_TOKEN_DECIMALS",
	InvalidNftId:                                       "INVALID_NFT_ID",
	InvalidTokenNftSerialNumber:                        "INVALID_TOKEN_NFT_SERIAL_NUMBER",
	SenderDoesNotOwnNftSerialNo:                        "SENDER_DOES_NOT_OWN_NFT_SERIAL_NO",
	TokenNotAssociatedToAccount:                        "TOKEN_NOT_ASSOCIATED_TO_ACCOUNT",
	TokenAlreadyAssociatedToAccount:                    "TOKEN_ALREADY_ASSOCIATED_TO_ACCOUNT",
	NoRemainingAutomaticAssociations:                   "NO_REMAINING_AUTOMATIC_ASSOCIATIONS",
	TransactionRequiresZeroTokenBalances:               "TRANSACTION_REQUIRES_ZERO_TOKEN_BALANCES",
	AccountIsTreasury:                                  "ACCOUNT_IS_TREASURY",
	SpenderDoesNotHaveAllowance:                        "SPENDER_DOES_NOT_HAVE_ALLOWANCE",
	AmountExceedsAllowance:                             "AMOUNT_EXCEEDS_ALLOWANCE",
	EmptyAllowances:                                    "EMPTY_ALLOWANCES",
	MaxAllowancesExceeded:                              "MAX_ALLOWANCES_EXCEEDED",
	InvalidAllowanceOwnerId:                            "INVALID_ALLOWANCE_OWNER_ID",
	InvalidAllowanceSpenderId:                          "INVALID_ALLOWANCE_SPENDER_ID",
	SpenderAccountSameAsOwner:                          "SPENDER_ACCOUNT_SAME_AS_OWNER",
	NegativeAllowanceAmount:                            "NEGATIVE_ALLOWANCE_AMOUNT",
	AmountExceedsTokenMaxSupply:                        "AMOUNT_EXCEEDS_TOKEN_MAX_SUPPLY",
	NftInFungibleTokenAllowances:                       "NFT_IN_FUNGIBLE_TOKEN_ALLOWANCES",
	FungibleTokenInNftAllowances:                       "FUNGIBLE_TOKEN_IN_NFT_ALLOWANCES",
	DelegatingSpenderCannotGrantApproveForAll:          "DELEGATING_SPENDER_CANNOT_GRANT_APPROVE_FOR_ALL",
	DelegatingSpenderDoesNotHaveApproveForAll:          "DELEGATING_SPENDER_DOES_NOT_HAVE_APPROVE_FOR_ALL",
	CustomFeeChargingExceededMaxRecursionDepth:         "CUSTOM_FEE_CHARGING_EXCEEDED_MAX_RECURSION_DEPTH",
	CustomFeeChargingExceededMaxAccountAmounts:         "CUSTOM_FEE_CHARGING_EXCEEDED_MAX_ACCOUNT_AMOUNTS",
	CustomFeeMustBePositive:                            "CUSTOM_FEE_MUST_BE_POSITIVE",
	FractionDividesByZero:                              "FRACTION_DIVIDES_BY_ZERO",
	FractionalFeeMaxAmountLessThanMinAmount:            "FRACTIONAL_FEE_MAX_AMOUNT_LESS_THAN_MIN_AMOUNT",
	RoyaltyFractionCannotExceedOne:                     "ROYALTY_FRACTION_CANNOT_EXCEED_ONE",
	CustomFeesListTooLong:                              "CUSTOM_FEES_LIST_TOO_LONG",
	InvalidCustomFeeCollector:                          "INVALID_CUSTOM_FEE_COLLECTOR",
	TokenNotAssociatedToFeeCollector:                   "TOKEN_NOT_ASSOCIATED_TO_FEE_COLLECTOR",
	InvalidTokenIdInCustomFees:                         "INVALID_TOKEN_ID_IN_CUSTOM_FEES",
	CustomFractionalFeeOnlyAllowedForFungibleCommon:    "CUSTOM_FRACTIONAL_FEE_ONLY_ALLOWED_FOR_FUNGIBLE_COMMON",
	CustomRoyaltyFeeOnlyAllowedForNonFungibleUnique:    "CUSTOM_ROYALTY_FEE_ONLY_ALLOWED_FOR_NON_FUNGIBLE_UNIQUE",
	TokenHasNoFeeScheduleKey:                           "TOKEN_HAS_NO_FEE_SCHEDULE_KEY",
	InvalidTreasuryAccountForToken:                     "INVALID_TREASURY_ACCOUNT_FOR_TOKEN",
	InvalidTokenInitialSupply:                          "INVALID_TOKEN_INITIAL_SUPPLY",
	InvalidTokenDecimals:                               "INVALID_TOKEN_DECIMALS",
	InvalidTokenMaxSupply:                              "INVALID_TOKEN_MAX_SUPPLY",
	InvalidTokenMintAmount:                             "INVALID_TOKEN_MINT_AMOUNT",
	TokenMaxSupplyReached:                              "TOKEN_MAX_SUPPLY_REACHED",
	KeyRequired:                                        "KEY_REQUIRED",
	MemoTooLong:                                        "MEMO_TOO_LONG",
	InvalidMaxAutoAssociations:                         "INVALID_MAX_AUTO_ASSOCIATIONS",
	InvalidInitialBalance:                              "INVALID_INITIAL_BALANCE",
	InvalidTransferAccountId:                           "INVALID_TRANSFER_ACCOUNT_ID",
	TransferAccountSameAsDeleteAccount:                 "TRANSFER_ACCOUNT_SAME_AS_DELETE_ACCOUNT",
	MissingTokenName:                                   "MISSING_TOKEN_NAME",
	MissingTokenSymbol:                                 "MISSING_TOKEN_SYMBOL",
	TokenNameTooLong:                                   "TOKEN_NAME_TOO_LONG",
	TokenSymbolTooLong:                                 "TOKEN_SYMBOL_TOO_LONG",
}

func (r ResponseCode) String() string {
	if name, ok := responseCodeNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// ResponseCodes returns all known response codes in ascending order
func ResponseCodes() []ResponseCode {
	codes := make([]ResponseCode, 0, len(responseCodeNames))
	for code := Success; int(code) < len(responseCodeNames); code++ {
		codes = append(codes, code)
	}
	return codes
}
