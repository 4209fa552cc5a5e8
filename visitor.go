// Copyright (c) 2024 Neomantra Corp

package itch

// Visitor receives decoded messages from Decoder.Visit, one method per
// tag. It is the low-level dispatch surface the wire decoder offers;
// processor.Processor is the primary consumer, but any caller can
// implement Visitor directly (e.g. the passthrough/filter use case).
type Visitor interface {
	OnSystemEvent(msg *SystemEventMessage) error
	OnStockDirectory(msg *StockDirectoryMessage) error
	OnStockTradingAction(msg *StockTradingActionMessage) error
	OnRegSHORestriction(msg *RegSHORestrictionMessage) error
	OnMarketParticipantPosition(msg *MarketParticipantPositionMessage) error
	OnMWCBDeclineLevel(msg *MWCBDeclineLevelMessage) error
	OnMWCBStatus(msg *MWCBStatusMessage) error
	OnIPOQuotingPeriod(msg *IPOQuotingPeriodMessage) error
	OnLULDAuctionCollar(msg *LULDAuctionCollarMessage) error
	OnOperationalHalt(msg *OperationalHaltMessage) error

	OnAddOrder(msg *AddOrderMessage) error
	OnAddOrderMPID(msg *AddOrderMPIDMessage) error
	OnOrderExecuted(msg *OrderExecutedMessage) error
	OnOrderExecutedWithPrice(msg *OrderExecutedWithPriceMessage) error
	OnOrderCancel(msg *OrderCancelMessage) error
	OnOrderDelete(msg *OrderDeleteMessage) error
	OnOrderReplace(msg *OrderReplaceMessage) error

	OnTrade(msg *TradeMessage) error
	OnCrossTrade(msg *CrossTradeMessage) error
	OnBrokenTrade(msg *BrokenTradeMessage) error
	OnNOII(msg *NOIIMessage) error
	OnRPI(msg *RPIMessage) error
	OnDirectListingCapitalRaise(msg *DirectListingCapitalRaiseMessage) error

	OnStreamEnd() error
}
