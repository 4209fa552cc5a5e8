// Copyright (c) 2024 Neomantra Corp

package itch

// NullVisitor implements all of Visitor as no-ops. It is useful for
// embedding in one's own implementation and overriding only the tags
// of interest.
type NullVisitor struct{}

func (v *NullVisitor) OnSystemEvent(msg *SystemEventMessage) error { return nil }
func (v *NullVisitor) OnStockDirectory(msg *StockDirectoryMessage) error { return nil }
func (v *NullVisitor) OnStockTradingAction(msg *StockTradingActionMessage) error { return nil }
func (v *NullVisitor) OnRegSHORestriction(msg *RegSHORestrictionMessage) error { return nil }
func (v *NullVisitor) OnMarketParticipantPosition(msg *MarketParticipantPositionMessage) error {
	return nil
}
func (v *NullVisitor) OnMWCBDeclineLevel(msg *MWCBDeclineLevelMessage) error { return nil }
func (v *NullVisitor) OnMWCBStatus(msg *MWCBStatusMessage) error             { return nil }
func (v *NullVisitor) OnIPOQuotingPeriod(msg *IPOQuotingPeriodMessage) error { return nil }
func (v *NullVisitor) OnLULDAuctionCollar(msg *LULDAuctionCollarMessage) error { return nil }
func (v *NullVisitor) OnOperationalHalt(msg *OperationalHaltMessage) error   { return nil }

func (v *NullVisitor) OnAddOrder(msg *AddOrderMessage) error         { return nil }
func (v *NullVisitor) OnAddOrderMPID(msg *AddOrderMPIDMessage) error { return nil }
func (v *NullVisitor) OnOrderExecuted(msg *OrderExecutedMessage) error { return nil }
func (v *NullVisitor) OnOrderExecutedWithPrice(msg *OrderExecutedWithPriceMessage) error {
	return nil
}
func (v *NullVisitor) OnOrderCancel(msg *OrderCancelMessage) error   { return nil }
func (v *NullVisitor) OnOrderDelete(msg *OrderDeleteMessage) error   { return nil }
func (v *NullVisitor) OnOrderReplace(msg *OrderReplaceMessage) error { return nil }

func (v *NullVisitor) OnTrade(msg *TradeMessage) error           { return nil }
func (v *NullVisitor) OnCrossTrade(msg *CrossTradeMessage) error { return nil }
func (v *NullVisitor) OnBrokenTrade(msg *BrokenTradeMessage) error { return nil }
func (v *NullVisitor) OnNOII(msg *NOIIMessage) error             { return nil }
func (v *NullVisitor) OnRPI(msg *RPIMessage) error               { return nil }
func (v *NullVisitor) OnDirectListingCapitalRaise(msg *DirectListingCapitalRaiseMessage) error {
	return nil
}

func (v *NullVisitor) OnStreamEnd() error { return nil }
