// Copyright (c) 2024 Neomantra Corp
//
// System, stock-reference and trading-status message kinds.

package itch

///////////////////////////////////////////////////////////////////////////////

// SystemEventMessage ('S') signals the start/end of system or market hours.
type SystemEventMessage struct {
	Header
	EventCode SystemEventCode `json:"event_code"`
}

const SystemEventMessage_Size = HeaderSize + 1

func (*SystemEventMessage) RSize() int { return SystemEventMessage_Size }

func (m *SystemEventMessage) Fill_Raw(b []byte) error {
	if len(b) < SystemEventMessage_Size {
		return unexpectedBytesError(byte(Tag_SystemEvent), len(b), SystemEventMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	m.EventCode = SystemEventCode(b[HeaderSize])
	return nil
}

func (m *SystemEventMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	b[HeaderSize] = byte(m.EventCode)
}

///////////////////////////////////////////////////////////////////////////////

// StockDirectoryMessage ('R') describes a listed instrument's reference data.
type StockDirectoryMessage struct {
	Header
	Stock                       Symbol         `json:"stock"`
	MarketCategory               MarketCategory `json:"market_category"`
	FinancialStatusIndicator     byte           `json:"financial_status_indicator"`
	RoundLotSize                 uint32         `json:"round_lot_size"`
	RoundLotsOnly                byte           `json:"round_lots_only"`
	IssueClassification          byte           `json:"issue_classification"`
	IssueSubType                 [2]byte        `json:"issue_sub_type"`
	Authenticity                 byte           `json:"authenticity"`
	ShortSaleThresholdIndicator  byte           `json:"short_sale_threshold_indicator"`
	IPOFlag                      byte           `json:"ipo_flag"`
	LULDReferencePriceTier       byte           `json:"luld_reference_price_tier"`
	ETPFlag                      byte           `json:"etp_flag"`
	ETPLeverageFactor             uint32        `json:"etp_leverage_factor"`
	InverseIndicator              byte         `json:"inverse_indicator"`
}

const StockDirectoryMessage_Size = HeaderSize + 28

func (*StockDirectoryMessage) RSize() int { return StockDirectoryMessage_Size }

func (m *StockDirectoryMessage) Fill_Raw(b []byte) error {
	if len(b) < StockDirectoryMessage_Size {
		return unexpectedBytesError(byte(Tag_StockDirectory), len(b), StockDirectoryMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.MarketCategory = MarketCategory(body[8])
	m.FinancialStatusIndicator = body[9]
	m.RoundLotSize = readUint32BE(body[10:14])
	m.RoundLotsOnly = body[14]
	m.IssueClassification = body[15]
	copy(m.IssueSubType[:], body[16:18])
	m.Authenticity = body[18]
	m.ShortSaleThresholdIndicator = body[19]
	m.IPOFlag = body[20]
	m.LULDReferencePriceTier = body[21]
	m.ETPFlag = body[22]
	m.ETPLeverageFactor = readUint32BE(body[23:27])
	m.InverseIndicator = body[27]
	return nil
}

func (m *StockDirectoryMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	body[8] = byte(m.MarketCategory)
	body[9] = m.FinancialStatusIndicator
	putUint32BE(body[10:14], m.RoundLotSize)
	body[14] = m.RoundLotsOnly
	body[15] = m.IssueClassification
	copy(body[16:18], m.IssueSubType[:])
	body[18] = m.Authenticity
	body[19] = m.ShortSaleThresholdIndicator
	body[20] = m.IPOFlag
	body[21] = m.LULDReferencePriceTier
	body[22] = m.ETPFlag
	putUint32BE(body[23:27], m.ETPLeverageFactor)
	body[27] = m.InverseIndicator
}

///////////////////////////////////////////////////////////////////////////////

// StockTradingActionMessage ('H') is a trading-status transition for a symbol.
type StockTradingActionMessage struct {
	Header
	Stock        Symbol             `json:"stock"`
	TradingState TradingActionState `json:"trading_state"`
	Reserved     byte               `json:"reserved"`
	Reason       [4]byte            `json:"reason"`
}

const StockTradingActionMessage_Size = HeaderSize + 14

func (*StockTradingActionMessage) RSize() int { return StockTradingActionMessage_Size }

func (m *StockTradingActionMessage) Fill_Raw(b []byte) error {
	if len(b) < StockTradingActionMessage_Size {
		return unexpectedBytesError(byte(Tag_StockTradingAction), len(b), StockTradingActionMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.TradingState = TradingActionState(body[8])
	m.Reserved = body[9]
	copy(m.Reason[:], body[10:14])
	return nil
}

func (m *StockTradingActionMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	body[8] = byte(m.TradingState)
	body[9] = m.Reserved
	copy(body[10:14], m.Reason[:])
}

///////////////////////////////////////////////////////////////////////////////

// RegSHORestrictionMessage ('Y') carries a symbol's Reg SHO short-sale action.
type RegSHORestrictionMessage struct {
	Header
	Stock        Symbol       `json:"stock"`
	RegSHOAction RegSHOAction `json:"reg_sho_action"`
}

const RegSHORestrictionMessage_Size = HeaderSize + 9

func (*RegSHORestrictionMessage) RSize() int { return RegSHORestrictionMessage_Size }

func (m *RegSHORestrictionMessage) Fill_Raw(b []byte) error {
	if len(b) < RegSHORestrictionMessage_Size {
		return unexpectedBytesError(byte(Tag_RegSHORestriction), len(b), RegSHORestrictionMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.RegSHOAction = RegSHOAction(body[8])
	return nil
}

func (m *RegSHORestrictionMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	body[8] = byte(m.RegSHOAction)
}

///////////////////////////////////////////////////////////////////////////////

// MarketParticipantPositionMessage ('L') is a market maker's registration state.
type MarketParticipantPositionMessage struct {
	Header
	MPID                   [4]byte                `json:"mpid"`
	Stock                  Symbol                 `json:"stock"`
	PrimaryMarketMaker     byte                   `json:"primary_market_maker"`
	MarketMakerMode        MarketMakerMode        `json:"market_maker_mode"`
	MarketParticipantState MarketParticipantState `json:"market_participant_state"`
}

const MarketParticipantPositionMessage_Size = HeaderSize + 15

func (*MarketParticipantPositionMessage) RSize() int { return MarketParticipantPositionMessage_Size }

func (m *MarketParticipantPositionMessage) Fill_Raw(b []byte) error {
	if len(b) < MarketParticipantPositionMessage_Size {
		return unexpectedBytesError(byte(Tag_MarketParticipantPosition), len(b), MarketParticipantPositionMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.MPID[:], body[0:4])
	copy(m.Stock[:], body[4:12])
	m.PrimaryMarketMaker = body[12]
	m.MarketMakerMode = MarketMakerMode(body[13])
	m.MarketParticipantState = MarketParticipantState(body[14])
	return nil
}

func (m *MarketParticipantPositionMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:4], m.MPID[:])
	copy(body[4:12], m.Stock[:])
	body[12] = m.PrimaryMarketMaker
	body[13] = byte(m.MarketMakerMode)
	body[14] = byte(m.MarketParticipantState)
}

///////////////////////////////////////////////////////////////////////////////

// MWCBDeclineLevelMessage ('V') carries the day's market-wide circuit breaker levels.
type MWCBDeclineLevelMessage struct {
	Header
	Level1 Price `json:"level1"`
	Level2 Price `json:"level2"`
	Level3 Price `json:"level3"`
}

const MWCBDeclineLevelMessage_Size = HeaderSize + 24

func (*MWCBDeclineLevelMessage) RSize() int { return MWCBDeclineLevelMessage_Size }

func (m *MWCBDeclineLevelMessage) Fill_Raw(b []byte) error {
	if len(b) < MWCBDeclineLevelMessage_Size {
		return unexpectedBytesError(byte(Tag_MWCBDeclineLevel), len(b), MWCBDeclineLevelMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.Level1 = Price(readUint64BE(body[0:8]))
	m.Level2 = Price(readUint64BE(body[8:16]))
	m.Level3 = Price(readUint64BE(body[16:24]))
	return nil
}

func (m *MWCBDeclineLevelMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.Level1))
	putUint64BE(body[8:16], uint64(m.Level2))
	putUint64BE(body[16:24], uint64(m.Level3))
}

///////////////////////////////////////////////////////////////////////////////

// MWCBStatusMessage ('W') announces which circuit-breaker level has been breached.
type MWCBStatusMessage struct {
	Header
	BreachedLevel byte `json:"breached_level"`
}

const MWCBStatusMessage_Size = HeaderSize + 1

func (*MWCBStatusMessage) RSize() int { return MWCBStatusMessage_Size }

func (m *MWCBStatusMessage) Fill_Raw(b []byte) error {
	if len(b) < MWCBStatusMessage_Size {
		return unexpectedBytesError(byte(Tag_MWCBStatus), len(b), MWCBStatusMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	m.BreachedLevel = b[HeaderSize]
	return nil
}

func (m *MWCBStatusMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	b[HeaderSize] = m.BreachedLevel
}

///////////////////////////////////////////////////////////////////////////////

// IPOQuotingPeriodMessage ('K') updates a pending IPO's release time and price.
type IPOQuotingPeriodMessage struct {
	Header
	Stock               Symbol `json:"stock"`
	IPOReleaseTime      uint32 `json:"ipo_release_time"`
	IPOReleaseQualifier byte   `json:"ipo_release_qualifier"`
	IPOPrice            Price  `json:"ipo_price"`
}

const IPOQuotingPeriodMessage_Size = HeaderSize + 17

func (*IPOQuotingPeriodMessage) RSize() int { return IPOQuotingPeriodMessage_Size }

func (m *IPOQuotingPeriodMessage) Fill_Raw(b []byte) error {
	if len(b) < IPOQuotingPeriodMessage_Size {
		return unexpectedBytesError(byte(Tag_IPOQuotingPeriod), len(b), IPOQuotingPeriodMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.IPOReleaseTime = readUint32BE(body[8:12])
	m.IPOReleaseQualifier = body[12]
	m.IPOPrice = Price(readUint32BE(body[13:17]))
	return nil
}

func (m *IPOQuotingPeriodMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	putUint32BE(body[8:12], m.IPOReleaseTime)
	body[12] = m.IPOReleaseQualifier
	putUint32BE(body[13:17], uint32(m.IPOPrice))
}

///////////////////////////////////////////////////////////////////////////////

// LULDAuctionCollarMessage ('J') carries the LULD collar band around an auction.
type LULDAuctionCollarMessage struct {
	Header
	Stock                       Symbol `json:"stock"`
	AuctionCollarReferencePrice Price  `json:"auction_collar_reference_price"`
	UpperAuctionCollarPrice     Price  `json:"upper_auction_collar_price"`
	LowerAuctionCollarPrice     Price  `json:"lower_auction_collar_price"`
	AuctionCollarExtension      uint32 `json:"auction_collar_extension"`
}

const LULDAuctionCollarMessage_Size = HeaderSize + 24

func (*LULDAuctionCollarMessage) RSize() int { return LULDAuctionCollarMessage_Size }

func (m *LULDAuctionCollarMessage) Fill_Raw(b []byte) error {
	if len(b) < LULDAuctionCollarMessage_Size {
		return unexpectedBytesError(byte(Tag_LULDAuctionCollar), len(b), LULDAuctionCollarMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.AuctionCollarReferencePrice = Price(readUint32BE(body[8:12]))
	m.UpperAuctionCollarPrice = Price(readUint32BE(body[12:16]))
	m.LowerAuctionCollarPrice = Price(readUint32BE(body[16:20]))
	m.AuctionCollarExtension = readUint32BE(body[20:24])
	return nil
}

func (m *LULDAuctionCollarMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	putUint32BE(body[8:12], uint32(m.AuctionCollarReferencePrice))
	putUint32BE(body[12:16], uint32(m.UpperAuctionCollarPrice))
	putUint32BE(body[16:20], uint32(m.LowerAuctionCollarPrice))
	putUint32BE(body[20:24], m.AuctionCollarExtension)
}

///////////////////////////////////////////////////////////////////////////////

// OperationalHaltMessage ('h') is a market-operator-initiated halt, distinct
// from a regulatory trading action.
type OperationalHaltMessage struct {
	Header
	Stock                 Symbol `json:"stock"`
	MarketCode            byte   `json:"market_code"`
	OperationalHaltAction byte   `json:"operational_halt_action"`
}

const OperationalHaltMessage_Size = HeaderSize + 10

func (*OperationalHaltMessage) RSize() int { return OperationalHaltMessage_Size }

func (m *OperationalHaltMessage) Fill_Raw(b []byte) error {
	if len(b) < OperationalHaltMessage_Size {
		return unexpectedBytesError(byte(Tag_OperationalHalt), len(b), OperationalHaltMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.MarketCode = body[8]
	m.OperationalHaltAction = body[9]
	return nil
}

func (m *OperationalHaltMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	body[8] = m.MarketCode
	body[9] = m.OperationalHaltAction
}

///////////////////////////////////////////////////////////////////////////////

// DirectListingCapitalRaiseMessage ('O') carries direct-listing auction parameters.
type DirectListingCapitalRaiseMessage struct {
	Header
	Stock                  Symbol `json:"stock"`
	OpenEligibilityStatus  byte   `json:"open_eligibility_status"`
	MinimumAllowablePrice  Price  `json:"minimum_allowable_price"`
	MaximumAllowablePrice  Price  `json:"maximum_allowable_price"`
	NearExecutionPrice     Price  `json:"near_execution_price"`
	NearExecutionTime      uint64 `json:"near_execution_time"`
	LowerPriceRangeCollar  Price  `json:"lower_price_range_collar"`
	UpperPriceRangeCollar  Price  `json:"upper_price_range_collar"`
}

const DirectListingCapitalRaiseMessage_Size = HeaderSize + 37

func (*DirectListingCapitalRaiseMessage) RSize() int { return DirectListingCapitalRaiseMessage_Size }

func (m *DirectListingCapitalRaiseMessage) Fill_Raw(b []byte) error {
	if len(b) < DirectListingCapitalRaiseMessage_Size {
		return unexpectedBytesError(byte(Tag_DirectListingCapitalRaise), len(b), DirectListingCapitalRaiseMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.OpenEligibilityStatus = body[8]
	m.MinimumAllowablePrice = Price(readUint32BE(body[9:13]))
	m.MaximumAllowablePrice = Price(readUint32BE(body[13:17]))
	m.NearExecutionPrice = Price(readUint32BE(body[17:21]))
	m.NearExecutionTime = readUint64BE(body[21:29])
	m.LowerPriceRangeCollar = Price(readUint32BE(body[29:33]))
	m.UpperPriceRangeCollar = Price(readUint32BE(body[33:37]))
	return nil
}

func (m *DirectListingCapitalRaiseMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	body[8] = m.OpenEligibilityStatus
	putUint32BE(body[9:13], uint32(m.MinimumAllowablePrice))
	putUint32BE(body[13:17], uint32(m.MaximumAllowablePrice))
	putUint32BE(body[17:21], uint32(m.NearExecutionPrice))
	putUint64BE(body[21:29], m.NearExecutionTime)
	putUint32BE(body[29:33], uint32(m.LowerPriceRangeCollar))
	putUint32BE(body[33:37], uint32(m.UpperPriceRangeCollar))
}
