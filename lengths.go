// Copyright (c) 2024 Neomantra Corp

package itch

// LengthTable maps a message tag to its fixed wire length, including
// the header. Used by the fixed-by-type framing mode (the first byte
// is the tag; there is no length prefix, so the table is the only way
// to know how many bytes follow). spec.md section 9 notes ITCH 4.1 and
// 5.0 differ only in the widths of a few messages, hence this is a
// value, not a compile-time constant: callers parameterize per venue
// and version by supplying a different table.
type LengthTable map[Tag]int

// ITCH50LengthTable is the NASDAQ TotalView-ITCH 5.0 tag-to-length table.
var ITCH50LengthTable = LengthTable{
	Tag_SystemEvent:               SystemEventMessage_Size,
	Tag_StockDirectory:            StockDirectoryMessage_Size,
	Tag_StockTradingAction:        StockTradingActionMessage_Size,
	Tag_RegSHORestriction:         RegSHORestrictionMessage_Size,
	Tag_MarketParticipantPosition: MarketParticipantPositionMessage_Size,
	Tag_MWCBDeclineLevel:          MWCBDeclineLevelMessage_Size,
	Tag_MWCBStatus:                MWCBStatusMessage_Size,
	Tag_IPOQuotingPeriod:          IPOQuotingPeriodMessage_Size,
	Tag_LULDAuctionCollar:         LULDAuctionCollarMessage_Size,
	Tag_OperationalHalt:           OperationalHaltMessage_Size,
	Tag_AddOrder:                  AddOrderMessage_Size,
	Tag_AddOrderMPID:              AddOrderMPIDMessage_Size,
	Tag_OrderExecuted:             OrderExecutedMessage_Size,
	Tag_OrderExecutedWithPrice:    OrderExecutedWithPriceMessage_Size,
	Tag_OrderCancel:               OrderCancelMessage_Size,
	Tag_OrderDelete:               OrderDeleteMessage_Size,
	Tag_OrderReplace:              OrderReplaceMessage_Size,
	Tag_Trade:                     TradeMessage_Size,
	Tag_CrossTrade:                CrossTradeMessage_Size,
	Tag_BrokenTrade:               BrokenTradeMessage_Size,
	Tag_NOII:                      NOIIMessage_Size,
	Tag_RPI:                       RPIMessage_Size,
	Tag_DirectListingCapitalRaise: DirectListingCapitalRaiseMessage_Size,
}

// ITCH41LengthTable is the 4.1 table: ITCH50LengthTable without the
// DirectListingCapitalRaise and RPI tags. Every tag it keeps has its
// 5.0 width; no 4.1-specific width is applied to any message.
// Copied from ITCH50LengthTable and adjusted rather than redefined, so
// the two tables can never silently drift apart on the messages they share.
var ITCH41LengthTable = func() LengthTable {
	t := make(LengthTable, len(ITCH50LengthTable))
	for tag, size := range ITCH50LengthTable {
		t[tag] = size
	}
	delete(t, Tag_DirectListingCapitalRaise)
	delete(t, Tag_RPI)
	return t
}()
