package calculator

import "time"

var instructionBlocks = [][]string{
	{
		"Buyer Investment Return Calculator - 2025 Edition (Apartments / Units / Townhouses)",
	},
	{
		"🎯 Buyer features:",
		"• Calculates a fair purchase price from your target net yield",
		"• Focused on apartment, unit and townhouse investments",
		"• No guessing: see directly how much to offer",
		"• Avoid overpaying and keep returns on target",
	},
	{
		"💰 Target yield guide:",
		"• 6%: conservative investor, steady returns",
		"• 6.5%: balanced investor, moderate risk and return",
		"• 7%: growth investor, higher returns",
		"• 8%: aggressive investor, high risk and high return",
	},
	{
		"📊 How to use:",
		"1. Edit the property management and maintenance reserve amounts",
		"2. Choose your target net yield (6.5-7% suggested)",
		"3. Read the matching \"Fair Price\" column",
		"4. Use that price as your maximum offer",
		"5. Fine-tune for RV, build year and other factors",
	},
	{
		"✏️ Editable parameters:",
		"• Weekly rent: adjust to the current market",
		"• Property management: enter the actual fee",
		"• Maintenance reserve: adjust for building age and condition",
		"• Other costs: body corp, council rates, insurance",
	},
	{
		"⚠️ Important:",
		"• Annual rent assumes 46 let weeks (6 weeks vacancy)",
		"• Property management and maintenance reserve are manual inputs",
		"• Yields are pre-tax; allow for personal income tax",
		"• Keep a further 10-15% safety margin below the fair price",
	},
	{
		"🏠 Decision flow:",
		"1. Set your target yield",
		"2. Enter accurate management costs",
		"3. Read the fair purchase price",
		"4. Compare with the asking price and RV",
		"5. Assess build year and rental status",
		"6. Plan your offer",
	},
	{
		"💡 Practical tips:",
		"• Property management is usually 5-8% of annual rent",
		"• Maintenance reserve: 2-3% for new buildings, 3-5% for older ones",
		"• If RV is above the fair price, only a large discount makes it worthwhile",
		"• Vacant properties can be offered closer to the target price",
		"• Long-term tenancies carry less risk and can justify a slightly higher price",
		"• Budget extra maintenance for older buildings",
	},
}

// ClosingLine is the last line of the instructions sheet
const ClosingLine = "Designed for New Zealand buyers to support informed investment decisions"

// InstructionLines returns the instructions sheet text, one cell per line,
// with blank lines between blocks and a creation date from now
func InstructionLines(now time.Time) []string {
	var lines []string
	for _, block := range instructionBlocks {
		lines = append(lines, block...)
		lines = append(lines, "")
	}
	return append(lines,
		"Created: "+now.Format("2006-01-02"),
		ClosingLine,
	)
}
