// Copyright (c) 2024 Neomantra Corp
//
// ITCH 5.0 field enumerations.
//
// Comments summarize NASDAQ TotalView-ITCH 5.0 Specification, section 4.

package itch

// Tag identifies the wire-format message kind. It is always the first
// byte of a record, an ASCII letter.
type Tag byte

const (
	Tag_SystemEvent               Tag = 'S'
	Tag_StockDirectory            Tag = 'R'
	Tag_StockTradingAction        Tag = 'H'
	Tag_RegSHORestriction         Tag = 'Y'
	Tag_MarketParticipantPosition Tag = 'L'
	Tag_MWCBDeclineLevel          Tag = 'V'
	Tag_MWCBStatus                Tag = 'W'
	Tag_IPOQuotingPeriod          Tag = 'K'
	Tag_LULDAuctionCollar         Tag = 'J'
	Tag_OperationalHalt           Tag = 'h'
	Tag_AddOrder                  Tag = 'A'
	Tag_AddOrderMPID              Tag = 'F'
	Tag_OrderExecuted             Tag = 'E'
	Tag_OrderExecutedWithPrice    Tag = 'C'
	Tag_OrderCancel               Tag = 'X'
	Tag_OrderDelete               Tag = 'D'
	Tag_OrderReplace              Tag = 'U'
	Tag_Trade                     Tag = 'P'
	Tag_CrossTrade                Tag = 'Q'
	Tag_BrokenTrade               Tag = 'B'
	Tag_NOII                      Tag = 'I'
	Tag_RPI                       Tag = 'N'
	Tag_DirectListingCapitalRaise Tag = 'O'
)

// String returns the single-character wire tag.
func (t Tag) String() string {
	return string(rune(t))
}

///////////////////////////////////////////////////////////////////////////////

// Side of an order or trade.
type Side byte

const (
	Side_Buy  Side = 'B'
	Side_Sell Side = 'A'
)

func (s Side) String() string {
	switch s {
	case Side_Buy:
		return "BUY"
	case Side_Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// IsBuy reports whether the side is the bid side.
func (s Side) IsBuy() bool {
	return s == Side_Buy
}

///////////////////////////////////////////////////////////////////////////////

// TradingStatus is the per-symbol trading state the processor tracks,
// driven by StockTradingAction (H) and OperationalHalt (h) messages.
type TradingStatus uint8

const (
	TradingStatus_Unknown TradingStatus = iota
	TradingStatus_PreTrade
	TradingStatus_Trading
	TradingStatus_Halted
	TradingStatus_QuoteOnly
	TradingStatus_ClosingAuction
	TradingStatus_PostTrade
	TradingStatus_Closed
)

func (s TradingStatus) String() string {
	switch s {
	case TradingStatus_PreTrade:
		return "PRE_TRADE"
	case TradingStatus_Trading:
		return "TRADING"
	case TradingStatus_Halted:
		return "HALTED"
	case TradingStatus_QuoteOnly:
		return "QUOTE_ONLY"
	case TradingStatus_ClosingAuction:
		return "CLOSING_AUCTION"
	case TradingStatus_PostTrade:
		return "POST_TRADE"
	case TradingStatus_Closed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// TradingActionState is the raw ITCH trading-state code carried by 'H'.
type TradingActionState byte

const (
	TradingActionState_Halted      TradingActionState = 'H'
	TradingActionState_Paused      TradingActionState = 'P'
	TradingActionState_QuoteOnly   TradingActionState = 'Q'
	TradingActionState_Trading     TradingActionState = 'T'
)

// ToTradingStatus maps a raw 'H' trading-action state to a TradingStatus.
func (s TradingActionState) ToTradingStatus() TradingStatus {
	switch s {
	case TradingActionState_Halted, TradingActionState_Paused:
		return TradingStatus_Halted
	case TradingActionState_QuoteOnly:
		return TradingStatus_QuoteOnly
	case TradingActionState_Trading:
		return TradingStatus_Trading
	default:
		return TradingStatus_Unknown
	}
}

///////////////////////////////////////////////////////////////////////////////

// SystemEventCode is the event code carried by a SystemEvent ('S') message.
type SystemEventCode byte

const (
	SystemEventCode_StartOfMessages  SystemEventCode = 'O'
	SystemEventCode_StartOfSystemHrs SystemEventCode = 'S'
	SystemEventCode_StartOfMarketHrs SystemEventCode = 'Q'
	SystemEventCode_EndOfMarketHrs   SystemEventCode = 'M'
	SystemEventCode_EndOfSystemHrs   SystemEventCode = 'E'
	SystemEventCode_EndOfMessages    SystemEventCode = 'C'
)

///////////////////////////////////////////////////////////////////////////////

// MarketCategory identifies the listing market of a StockDirectory entry.
type MarketCategory byte

const (
	MarketCategory_NasdaqGlobalSelect MarketCategory = 'Q'
	MarketCategory_NasdaqGlobalMarket MarketCategory = 'G'
	MarketCategory_NasdaqCapitalMkt   MarketCategory = 'S'
	MarketCategory_NYSE               MarketCategory = 'N'
	MarketCategory_NYSEAmerican        MarketCategory = 'A'
	MarketCategory_NYSEArca            MarketCategory = 'P'
	MarketCategory_BATS                MarketCategory = 'Z'
	MarketCategory_Unavailable         MarketCategory = ' '
)

// RegSHOAction is the Reg SHO short-sale restriction action ('Y').
type RegSHOAction byte

const (
	RegSHOAction_NoPriceTest   RegSHOAction = '0'
	RegSHOAction_Active        RegSHOAction = '1'
	RegSHOAction_Remains       RegSHOAction = '2'
)

// MarketMakerMode is the registration mode carried by MarketParticipantPosition ('L').
type MarketMakerMode byte

const (
	MarketMakerMode_Normal      MarketMakerMode = 'N'
	MarketMakerMode_Passive     MarketMakerMode = 'P'
	MarketMakerMode_Syndicate   MarketMakerMode = 'S'
	MarketMakerMode_Presyndicate MarketMakerMode = 'R'
	MarketMakerMode_Penalty     MarketMakerMode = 'L'
)

// MarketParticipantState is the participant state carried by 'L'.
type MarketParticipantState byte

const (
	MarketParticipantState_Active     MarketParticipantState = 'A'
	MarketParticipantState_Excused    MarketParticipantState = 'E'
	MarketParticipantState_Withdrawn  MarketParticipantState = 'W'
	MarketParticipantState_Suspended  MarketParticipantState = 'S'
	MarketParticipantState_Deleted    MarketParticipantState = 'D'
)

// CrossType identifies the auction kind of a CrossTrade ('Q') or NOII ('I').
type CrossType byte

const (
	CrossType_Opening       CrossType = 'O'
	CrossType_Closing       CrossType = 'C'
	CrossType_IPOHalted     CrossType = 'H'
	CrossType_IntradayOrHalt CrossType = 'I'
)

// ImbalanceDirection is the NOII ('I') net-order-imbalance direction.
type ImbalanceDirection byte

const (
	ImbalanceDirection_Buy     ImbalanceDirection = 'B'
	ImbalanceDirection_Sell    ImbalanceDirection = 'S'
	ImbalanceDirection_None    ImbalanceDirection = 'N'
	ImbalanceDirection_Insufficient ImbalanceDirection = 'O'
)

// PrintableFlag indicates whether an OrderExecutedWithPrice ('C') print
// should be reflected in time-and-sales / last-sale data.
type PrintableFlag byte

const (
	PrintableFlag_Printable    PrintableFlag = 'Y'
	PrintableFlag_NonPrintable PrintableFlag = 'N'
)

func (p PrintableFlag) IsPrintable() bool {
	return p == PrintableFlag_Printable
}

// RPIInterestFlag is the retail price improvement interest flag carried by 'N'.
type RPIInterestFlag byte

const (
	RPIInterestFlag_None     RPIInterestFlag = 'N'
	RPIInterestFlag_BuySide  RPIInterestFlag = 'B'
	RPIInterestFlag_SellSide RPIInterestFlag = 'S'
	RPIInterestFlag_Both     RPIInterestFlag = 'A'
)
