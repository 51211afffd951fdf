package seed

import (
	"gorm.io/datatypes"

	"simconnect/internal/models/db_models"
)

// Versioned reference dataset. Countries carry two locales; operators and
// plans mirror real offerings closely enough to be useful out of the box.

func seedCountries() []db_models.Country {
	return []db_models.Country{
		{ID: "jp", NameEN: "Japan", NameES: "Japón", Continent: "Asia", Currency: "JPY", Flag: "🇯🇵"},
		{ID: "es", NameEN: "Spain", NameES: "España", Continent: "Europe", Currency: "EUR", Flag: "🇪🇸"},
		{ID: "us", NameEN: "United States", NameES: "Estados Unidos", Continent: "North America", Currency: "USD", Flag: "🇺🇸"},
		{ID: "fr", NameEN: "France", NameES: "Francia", Continent: "Europe", Currency: "EUR", Flag: "🇫🇷"},
		{ID: "de", NameEN: "Germany", NameES: "Alemania", Continent: "Europe", Currency: "EUR", Flag: "🇩🇪"},
		{ID: "it", NameEN: "Italy", NameES: "Italia", Continent: "Europe", Currency: "EUR", Flag: "🇮🇹"},
		{ID: "gb", NameEN: "United Kingdom", NameES: "Reino Unido", Continent: "Europe", Currency: "GBP", Flag: "🇬🇧"},
		{ID: "th", NameEN: "Thailand", NameES: "Tailandia", Continent: "Asia", Currency: "THB", Flag: "🇹🇭"},
		{ID: "mx", NameEN: "Mexico", NameES: "México", Continent: "North America", Currency: "MXN", Flag: "🇲🇽"},
		{ID: "br", NameEN: "Brazil", NameES: "Brasil", Continent: "South America", Currency: "BRL", Flag: "🇧🇷"},
		{ID: "au", NameEN: "Australia", NameES: "Australia", Continent: "Oceania", Currency: "AUD", Flag: "🇦🇺"},
		{ID: "tr", NameEN: "Turkey", NameES: "Turquía", Continent: "Asia", Currency: "TRY", Flag: "🇹🇷"},
	}
}

func seedOperators() []db_models.Operator {
	return []db_models.Operator{
		{ID: "op-jp-docomo", Name: "NTT Docomo", CountryID: "jp", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.docomo.ne.jp", Coverage: "Nationwide, excellent urban and rural coverage"},
		{ID: "op-jp-rakuten", Name: "Rakuten Mobile", CountryID: "jp", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://network.mobile.rakuten.co.jp", Coverage: "Strong in cities, growing rural network"},
		{ID: "op-es-movistar", Name: "Movistar", CountryID: "es", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.movistar.es", Coverage: "Nationwide including islands"},
		{ID: "op-es-vodafone", Name: "Vodafone España", CountryID: "es", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.vodafone.es", Coverage: "Excellent urban coverage"},
		{ID: "op-us-tmobile", Name: "T-Mobile US", CountryID: "us", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.t-mobile.com", Coverage: "Nationwide 5G, weaker in remote areas"},
		{ID: "op-us-att", Name: "AT&T", CountryID: "us", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.att.com", Coverage: "Broad nationwide coverage"},
		{ID: "op-fr-orange", Name: "Orange France", CountryID: "fr", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.orange.fr", Coverage: "Best-rated network in France"},
		{ID: "op-de-telekom", Name: "Deutsche Telekom", CountryID: "de", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.telekom.de", Coverage: "Market-leading coverage"},
		{ID: "op-th-ais", Name: "AIS", CountryID: "th", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.ais.th", Coverage: "Nationwide, tourist-friendly"},
		{ID: "op-mx-telcel", Name: "Telcel", CountryID: "mx", Technologies: datatypes.NewJSONSlice([]string{"4G", "5G"}), Website: "https://www.telcel.com", Coverage: "Widest coverage in Mexico"},
	}
}

func seedPlans() []db_models.Plan {
	return []db_models.Plan{
		{ID: "plan-jp-docomo-8", OperatorID: "op-jp-docomo", Name: "Japan Travel SIM 8GB", DataGB: 8, Price: 24, Currency: "USD", ValidityDays: 15, SimType: db_models.SimTypePhysical, Speed5G: false, Features: datatypes.NewJSONSlice([]string{"Hotspot allowed", "English support"})},
		{ID: "plan-jp-docomo-unl", OperatorID: "op-jp-docomo", Name: "Japan Unlimited", DataGB: db_models.Unlimited, Price: 42, Currency: "USD", ValidityDays: 30, SimType: db_models.SimTypeESIM, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited data", "5G access", "Instant activation"})},
		{ID: "plan-jp-rakuten-20", OperatorID: "op-jp-rakuten", Name: "Rakuten Traveler 20GB", DataGB: 20, Price: 29, Currency: "USD", ValidityDays: 30, SimType: db_models.SimTypeESIM, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"5G access", "eSIM QR delivery"})},
		{ID: "plan-es-movistar-10", OperatorID: "op-es-movistar", Name: "Prepago Viaje 10GB", DataGB: 10, Price: 15, Currency: "EUR", ValidityDays: 28, SimType: db_models.SimTypePhysical, Speed5G: false, Features: datatypes.NewJSONSlice([]string{"EU roaming included"})},
		{ID: "plan-es-movistar-50", OperatorID: "op-es-movistar", Name: "Prepago Total 50GB", DataGB: 50, Price: 25, Currency: "EUR", ValidityDays: 28, SimType: db_models.SimTypeHybrid, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"EU roaming included", "5G access"})},
		{ID: "plan-es-vodafone-unl", OperatorID: "op-es-vodafone", Name: "Vodafone Ilimitada", DataGB: db_models.Unlimited, Price: 35, Currency: "EUR", ValidityDays: 28, SimType: db_models.SimTypeESIM, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited data", "5G access", "EU roaming"})},
		{ID: "plan-us-tmobile-15", OperatorID: "op-us-tmobile", Name: "Tourist Plan 15GB", DataGB: 15, Price: 30, Currency: "USD", ValidityDays: 21, SimType: db_models.SimTypePhysical, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited calls/texts", "5G access"})},
		{ID: "plan-us-tmobile-unl", OperatorID: "op-us-tmobile", Name: "Prepaid Unlimited", DataGB: db_models.Unlimited, Price: 50, Currency: "USD", ValidityDays: 30, SimType: db_models.SimTypeHybrid, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited data", "Hotspot 10GB", "5G access"})},
		{ID: "plan-us-att-12", OperatorID: "op-us-att", Name: "AT&T Prepaid 12GB", DataGB: 12, Price: 25, Currency: "USD", ValidityDays: 30, SimType: db_models.SimTypePhysical, Speed5G: false, Features: datatypes.NewJSONSlice([]string{"Rollover data"})},
		{ID: "plan-fr-orange-holiday", OperatorID: "op-fr-orange", Name: "Orange Holiday Europe 30GB", DataGB: 30, Price: 40, Currency: "EUR", ValidityDays: 14, SimType: db_models.SimTypeESIM, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"EU roaming", "120 intl. minutes", "5G access"})},
		{ID: "plan-fr-orange-zen", OperatorID: "op-fr-orange", Name: "Orange Holiday Zen 12GB", DataGB: 12, Price: 20, Currency: "EUR", ValidityDays: 14, SimType: db_models.SimTypePhysical, Speed5G: false, Features: datatypes.NewJSONSlice([]string{"EU roaming"})},
		{ID: "plan-de-telekom-prepaid", OperatorID: "op-de-telekom", Name: "MagentaMobil Prepaid 6GB", DataGB: 6, Price: 10, Currency: "EUR", ValidityDays: 28, SimType: db_models.SimTypePhysical, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"EU roaming", "5G access"})},
		{ID: "plan-de-telekom-max", OperatorID: "op-de-telekom", Name: "Prepaid Max Unlimited", DataGB: db_models.Unlimited, Price: 100, Currency: "EUR", ValidityDays: 28, SimType: db_models.SimTypeESIM, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited data", "5G access"})},
		{ID: "plan-th-ais-tourist-15", OperatorID: "op-th-ais", Name: "Tourist SIM 15GB", DataGB: 15, Price: 9, Currency: "USD", ValidityDays: 8, SimType: db_models.SimTypePhysical, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Free AIS WiFi", "100 THB call credit"})},
		{ID: "plan-th-ais-tourist-30", OperatorID: "op-th-ais", Name: "Tourist SIM 30GB", DataGB: 30, Price: 17, Currency: "USD", ValidityDays: 15, SimType: db_models.SimTypeHybrid, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Free AIS WiFi", "5G access"})},
		{ID: "plan-th-ais-unl", OperatorID: "op-th-ais", Name: "Tourist Unlimited", DataGB: db_models.Unlimited, Price: 25, Currency: "USD", ValidityDays: 30, SimType: db_models.SimTypeESIM, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited data", "eSIM QR delivery"})},
		{ID: "plan-mx-telcel-8", OperatorID: "op-mx-telcel", Name: "Amigo Sin Límite 8GB", DataGB: 8, Price: 200, Currency: "MXN", ValidityDays: 30, SimType: db_models.SimTypePhysical, Speed5G: false, Features: datatypes.NewJSONSlice([]string{"Unlimited social apps"})},
		{ID: "plan-mx-telcel-25", OperatorID: "op-mx-telcel", Name: "Amigo Plus 25GB", DataGB: 25, Price: 500, Currency: "MXN", ValidityDays: 30, SimType: db_models.SimTypeHybrid, Speed5G: true, Features: datatypes.NewJSONSlice([]string{"Unlimited social apps", "5G access"})},
	}
}

func seedProfile() db_models.Profile {
	return db_models.Profile{
		ID:            db_models.ProfileID,
		Name:          "Traveler",
		Points:        0,
		Contributions: 0,
		Badges:        datatypes.NewJSONSlice([]string{}),
	}
}
