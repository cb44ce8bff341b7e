package divdata

// The curated table is a hand-maintained seed of dividend figures for
// well-known tickers. It is a point-in-time snapshot, not a live source:
// entries exist so common portfolios resolve without any external call, and
// provider data overrides nothing here within a process lifetime. Figures are
// annual per-share amounts and trailing yields in percent.

func q(annual, yld float64) Fact {
	return Fact{Annual: annual, Yield: yld, Frequency: FrequencyQuarterly}
}

func mo(annual, yld float64) Fact {
	return Fact{Annual: annual, Yield: yld, Frequency: FrequencyMonthly}
}

func sa(annual, yld float64) Fact {
	return Fact{Annual: annual, Yield: yld, Frequency: FrequencySemiAnnual}
}

func an(annual, yld float64) Fact {
	return Fact{Annual: annual, Yield: yld, Frequency: FrequencyAnnual}
}

func etf(f Fact) Fact {
	f.IsETF = true
	return f
}

// nonPayer marks symbols known not to pay dividends so they never hit the
// provider chain.
var nonPayer = Fact{Frequency: FrequencyQuarterly}

//nolint:funlen // Hand-maintained data table
func curatedFacts() map[string]Fact {
	return map[string]Fact{
		// Mega-cap tech
		"AAPL":  q(0.96, 0.55),
		"MSFT":  q(3.00, 0.72),
		"AVGO":  q(21.00, 1.55),
		"CSCO":  q(1.56, 3.25),
		"IBM":   q(6.64, 3.80),
		"INTC":  q(0.50, 1.60),
		"ORCL":  q(1.60, 1.35),
		"QCOM":  q(3.20, 1.90),
		"TXN":   q(5.20, 3.05),
		"ADBE":  nonPayer,
		"AMZN":  nonPayer,
		"GOOGL": q(0.80, 0.45),
		"GOOG":  q(0.80, 0.45),
		"META":  q(2.00, 0.40),
		"NVDA":  q(0.16, 0.02),
		"TSLA":  nonPayer,
		"AMD":   nonPayer,
		"CRM":   q(1.60, 0.55),
		"NFLX":  nonPayer,
		"PLTR":  nonPayer,
		"SHOP":  nonPayer,
		"SNOW":  nonPayer,
		"SQ":    nonPayer,
		"PYPL":  nonPayer,
		"UBER":  nonPayer,
		"ABNB":  nonPayer,
		"HPQ":   q(1.10, 3.10),
		"DELL":  q(1.78, 1.55),
		"MU":    q(0.46, 0.40),
		"AMAT":  q(1.60, 0.80),
		"LRCX":  q(9.20, 1.00),
		"KLAC":  q(5.80, 0.85),
		"ADI":   q(3.68, 1.65),
		"NXPI":  q(4.06, 1.70),

		// Consumer staples
		"KO":   q(1.94, 3.10),
		"PEP":  q(5.42, 3.20),
		"PG":   q(4.03, 2.45),
		"CL":   q(2.00, 2.10),
		"KMB":  q(4.88, 3.55),
		"GIS":  q(2.40, 3.45),
		"K":    q(2.26, 3.70),
		"KHC":  q(1.60, 4.55),
		"HSY":  q(5.48, 2.85),
		"MDLZ": q(1.70, 2.45),
		"MKC":  q(1.68, 2.35),
		"SJM":  q(4.24, 3.75),
		"CAG":  q(1.40, 4.85),
		"CPB":  q(1.48, 3.30),
		"CHD":  q(1.13, 1.10),
		"CLX":  q(4.80, 3.40),
		"EL":   q(2.64, 2.00),
		"KDP":  q(0.86, 2.60),
		"MNST": nonPayer,
		"STZ":  q(4.04, 1.60),
		"TAP":  q(1.76, 3.10),
		"PM":   q(5.30, 5.10),
		"MO":   q(3.92, 8.40),
		"BTI":  q(2.94, 9.50),
		"WMT":  q(0.83, 1.35),
		"COST": q(4.64, 0.55),
		"TGT":  q(4.48, 3.05),
		"DG":   q(2.36, 1.80),
		"KR":   q(1.28, 2.30),

		// Healthcare
		"JNJ":  q(4.96, 3.05),
		"PFE":  q(1.68, 5.90),
		"MRK":  q(3.08, 2.45),
		"ABBV": q(6.20, 3.60),
		"BMY":  q(2.40, 5.55),
		"LLY":  q(5.20, 0.65),
		"AMGN": q(9.00, 3.15),
		"GILD": q(3.08, 4.40),
		"MDT":  q(2.80, 3.35),
		"ABT":  q(2.20, 2.05),
		"BAX":  q(1.16, 3.35),
		"CVS":  q(2.66, 4.50),
		"UNH":  q(8.40, 1.65),
		"ZTS":  q(1.73, 1.00),
		"MRNA": nonPayer,

		// Financials
		"JPM":  q(4.60, 2.30),
		"BAC":  q(1.04, 2.65),
		"WFC":  q(1.40, 2.45),
		"C":    q(2.12, 3.45),
		"GS":   q(12.00, 2.60),
		"MS":   q(3.70, 3.60),
		"USB":  q(1.96, 4.60),
		"PNC":  q(6.40, 4.00),
		"TFC":  q(2.08, 5.35),
		"BK":   q(1.88, 2.95),
		"AXP":  q(2.80, 1.20),
		"V":    q(2.08, 0.75),
		"MA":   q(2.64, 0.55),
		"BLK":  q(20.40, 2.55),
		"SCHW": q(1.00, 1.45),
		"SPGI": q(3.64, 0.85),
		"CB":   q(3.44, 1.35),
		"MET":  q(2.08, 2.95),
		"PRU":  q(5.00, 4.30),
		"AFL":  q(1.68, 2.00),
		"TRV":  q(4.00, 1.90),
		"ALL":  q(3.56, 2.10),
		"AIG":  q(1.44, 1.95),
		"BRK.B": nonPayer,

		// Energy
		"XOM": q(3.64, 3.30),
		"CVX": q(6.04, 4.05),
		"COP": q(2.32, 2.05),
		"EOG": q(3.64, 2.95),
		"SLB": q(1.00, 2.10),
		"OXY": q(0.72, 1.20),
		"PSX": q(4.20, 3.25),
		"VLO": q(4.08, 2.80),
		"MPC": q(3.30, 1.95),
		"KMI": q(1.13, 5.85),
		"WMB": q(1.79, 4.75),
		"OKE": q(3.82, 4.85),
		"EPD": q(2.00, 7.10),
		"ET":  q(1.24, 8.05),
		"BP":  q(1.74, 4.85),
		"SHEL": q(2.64, 3.95),
		"TTE": q(3.18, 4.90),

		// Utilities
		"NEE": q(1.87, 2.55),
		"DUK": q(4.10, 4.05),
		"SO":  q(2.80, 3.70),
		"D":   q(2.67, 5.25),
		"AEP": q(3.52, 3.95),
		"EXC": q(1.44, 3.85),
		"XEL": q(2.08, 3.90),
		"ED":  q(3.24, 3.50),
		"WEC": q(3.12, 3.75),
		"PCG": q(0.04, 0.25),
		"PPL": q(0.96, 3.60),
		"FE":  q(1.56, 4.10),

		// Industrials and materials
		"CAT": q(5.20, 1.55),
		"DE":  q(5.40, 1.45),
		"HON": q(4.32, 2.15),
		"GE":  q(1.12, 0.70),
		"MMM": q(6.04, 5.95),
		"UPS": q(6.48, 4.45),
		"FDX": q(5.04, 2.00),
		"LMT": q(12.60, 2.75),
		"RTX": q(2.36, 2.40),
		"NOC": q(7.48, 1.60),
		"GD":  q(5.28, 1.85),
		"BA":  nonPayer,
		"UNP": q(5.20, 2.15),
		"CSX": q(0.44, 1.30),
		"NSC": q(5.40, 2.25),
		"EMR": q(2.10, 1.90),
		"ETN": q(3.64, 1.15),
		"ITW": q(5.60, 2.30),
		"PH":  q(6.52, 1.20),
		"ROK": q(5.00, 1.80),
		"DOW": q(2.80, 5.20),
		"LIN": q(5.56, 1.25),
		"APD": q(7.08, 2.45),
		"NUE": q(2.16, 1.25),
		"FCX": q(0.60, 1.20),
		"NEM": q(1.00, 2.35),

		// Telecom and media
		"T":    q(1.11, 6.45),
		"VZ":   q(2.66, 6.55),
		"TMUS": q(2.60, 1.45),
		"CMCSA": q(1.24, 3.15),
		"DIS":  sa(0.90, 0.80),

		// Consumer discretionary
		"HD":   q(9.00, 2.45),
		"LOW":  q(4.40, 1.95),
		"MCD":  q(6.68, 2.30),
		"SBUX": q(2.28, 2.40),
		"YUM":  q(2.68, 2.00),
		"NKE":  q(1.48, 1.95),
		"F":    q(0.60, 5.05),
		"GM":   q(0.48, 1.05),
		"VFC":  q(0.36, 2.15),

		// REITs (mostly monthly or quarterly payers)
		"O":    mo(3.08, 5.70),
		"STAG": mo(1.48, 4.20),
		"AGNC": mo(1.44, 14.80),
		"MAIN": mo(2.88, 5.90),
		"EPR":  mo(3.42, 7.80),
		"LTC":  mo(2.28, 6.90),
		"SPG":  q(8.00, 5.30),
		"PLD":  q(3.84, 3.05),
		"AMT":  q(6.48, 3.30),
		"CCI":  q(6.26, 6.15),
		"EQIX": q(17.04, 2.15),
		"VICI": q(1.66, 5.45),
		"WPC":  q(3.44, 6.05),
		"NNN":  q(2.26, 5.30),
		"VTR":  q(1.80, 3.75),
		"WELL": q(2.44, 2.55),
		"DLR":  q(4.88, 3.40),

		// Dividend and index ETFs
		"SCHD": etf(q(2.66, 3.45)),
		"VYM":  etf(q(3.48, 2.95)),
		"VIG":  etf(q(3.32, 1.80)),
		"DVY":  etf(q(4.42, 3.60)),
		"HDV":  etf(q(4.12, 3.75)),
		"SPYD": etf(q(1.82, 4.55)),
		"SPHD": etf(mo(1.86, 4.30)),
		"NOBL": etf(q(1.92, 2.00)),
		"DGRO": etf(q(1.30, 2.25)),
		"JEPI": etf(mo(4.32, 7.55)),
		"JEPQ": etf(mo(4.68, 9.00)),
		"QYLD": etf(mo(2.04, 11.50)),
		"VOO":  etf(q(6.62, 1.35)),
		"VTI":  etf(q(3.54, 1.35)),
		"SPY":  etf(q(7.04, 1.30)),
		"IVV":  etf(q(7.12, 1.30)),
		"QQQ":  etf(q(2.66, 0.60)),
		"DIA":  etf(mo(6.80, 1.70)),
		"IWM":  etf(q(2.46, 1.15)),
		"VEA":  etf(q(1.54, 3.05)),
		"VWO":  etf(q(1.42, 3.25)),
		"VXUS": etf(q(1.86, 3.00)),
		"BND":  etf(mo(2.46, 3.40)),
		"AGG":  etf(mo(3.24, 3.30)),
		"TLT":  etf(mo(3.48, 3.75)),
		"VNQ":  etf(q(3.56, 3.95)),
		"SCHY": etf(q(1.06, 4.20)),
		"VYMI": etf(q(2.94, 4.40)),

		// UK / international listings (semi-annual payers common)
		"UL":     q(1.80, 3.55),
		"GSK":    q(2.44, 3.85),
		"AZN":    sa(1.45, 1.90),
		"HSBC":   q(2.48, 6.20),
		"RIO":    sa(4.35, 6.60),
		"BHP":    sa(2.92, 5.10),
		"VOD":    sa(0.92, 9.85),
		"NGG":    sa(3.60, 5.45),
		"DEO":    sa(4.04, 2.95),
		"SAN":    sa(0.21, 4.40),
		"TM":     sa(5.00, 2.70),
		"SONY":   sa(0.56, 0.65),
		"NVO":    sa(1.46, 1.05),
		"ASML":   q(6.40, 0.75),

		// Canadian listings
		"ENB":    q(2.66, 7.45),
		"TRP":    q(2.81, 7.05),
		"BNS":    q(3.14, 6.55),
		"TD":     q(2.96, 4.95),
		"RY":     q(4.06, 4.00),
		"BMO":    q(4.44, 5.00),
		"CM":     q(2.66, 5.60),
		"SU":     q(1.60, 4.20),
		"CNQ":    q(2.94, 4.10),

		// Crypto and growth names that never pay
		"COIN": nonPayer,
		"MSTR": nonPayer,
		"RIOT": nonPayer,
		"MARA": nonPayer,
		"HOOD": nonPayer,
		"SOFI": nonPayer,
		"RBLX": nonPayer,
		"DKNG": nonPayer,
		"CRWD": nonPayer,
		"DDOG": nonPayer,
		"NET":  nonPayer,
		"ZS":   nonPayer,
		"TTD":  nonPayer,
		"ROKU": nonPayer,
		"LCID": nonPayer,
		"RIVN": nonPayer,

		// Misc quarterly payers
		"ADM":  q(2.00, 3.30),
		"ADP":  q(5.60, 2.30),
		"PAYX": q(3.92, 3.20),
		"WM":   q(3.00, 1.45),
		"RSG":  q(2.32, 1.20),
		"ECL":  q(2.28, 0.95),
		"SHW":  q(2.86, 0.90),
		"GPC":  q(4.00, 2.85),
		"BEN":  q(1.24, 5.25),
		"TROW": q(4.96, 4.35),
		"LEG":  an(0.20, 1.60),
		"WBA":  q(1.00, 8.60),
		"X":    q(0.20, 0.55),
		"AA":   q(0.40, 1.25),
	}
}
