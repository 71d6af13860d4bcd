package factors

// Reference canteens with measured CO2e intensity, menu, organic, waste and
// local sourcing shares.
//
//nolint:funlen // data table
func seedCanteens() []Canteen {
	return []Canteen{
		{ID: 215, Name: "Bravida", Location: "København", Address: "København",
			CO2PerKg: 3.444, GreenPercent: 21.8, MeatPercent: 19.0, OrganicPercent: 44.3,
			FoodWastePercent: 7.6, LocalSourced: 43.3, Employees: 150, MealsPerDay: 120, OperatingDays: 240},
		{ID: 245, Name: "Henning Larsen", Location: "København V", Address: "Vesterbrogade 76, 1620 København V",
			CO2PerKg: 1.586, GreenPercent: 39.0, MeatPercent: 4.9, OrganicPercent: 65.2,
			FoodWastePercent: 5.3, LocalSourced: 46.7, Employees: 200, MealsPerDay: 170, OperatingDays: 240},
		{ID: 260, Name: "Ekstra Bladet", Location: "København V", Address: "Rådhuspladsen 18, 1550 København V",
			CO2PerKg: 3.161, GreenPercent: 25.6, MeatPercent: 17.6, OrganicPercent: 33.5,
			FoodWastePercent: 8.9, LocalSourced: 38.2, Employees: 180, MealsPerDay: 150, OperatingDays: 240},
		{ID: 290, Name: "Astralis", Location: "København S", Address: "Island Brygge 55, 2300 København S",
			CO2PerKg: 3.225, GreenPercent: 24.2, MeatPercent: 18.3, OrganicPercent: 41.7,
			FoodWastePercent: 7.2, LocalSourced: 41.5, Employees: 90, MealsPerDay: 75, OperatingDays: 240},
		{ID: 300, Name: "Zangenberg", Location: "København Ø", Address: "Strandgade 56, 1401 København K",
			CO2PerKg: 2.873, GreenPercent: 28.5, MeatPercent: 14.8, OrganicPercent: 52.3,
			FoodWastePercent: 6.4, LocalSourced: 48.9, Employees: 120, MealsPerDay: 100, OperatingDays: 240},
		{ID: 325, Name: "DTU Skylab", Location: "Kongens Lyngby", Address: "DTU Diplomvej 373, 2800 Kgs. Lyngby",
			CO2PerKg: 2.245, GreenPercent: 34.7, MeatPercent: 10.2, OrganicPercent: 58.6,
			FoodWastePercent: 5.8, LocalSourced: 52.1, Employees: 250, MealsPerDay: 210, OperatingDays: 240},
		{ID: 345, Name: "Novo Nordisk Bagsværd", Location: "Bagsværd", Address: "Novo Allé 1, 2880 Bagsværd",
			CO2PerKg: 2.156, GreenPercent: 36.2, MeatPercent: 9.4, OrganicPercent: 61.2,
			FoodWastePercent: 4.9, LocalSourced: 55.8, Employees: 500, MealsPerDay: 450, OperatingDays: 240},
		{ID: 360, Name: "Ørsted", Location: "Fredericia", Address: "Kraftværksvej 53, 7000 Fredericia",
			CO2PerKg: 2.987, GreenPercent: 26.8, MeatPercent: 15.9, OrganicPercent: 45.8,
			FoodWastePercent: 7.8, LocalSourced: 42.7, Employees: 280, MealsPerDay: 230, OperatingDays: 240},
		{ID: 380, Name: "Mærsk Tower", Location: "København N", Address: "Blegdamsvej 3B, 2200 København N",
			CO2PerKg: 1.987, GreenPercent: 37.5, MeatPercent: 8.1, OrganicPercent: 63.4,
			FoodWastePercent: 5.1, LocalSourced: 57.2, Employees: 350, MealsPerDay: 300, OperatingDays: 240},
		{ID: 400, Name: "Bestseller", Location: "Brande", Address: "Industrivej 1, 7330 Brande",
			CO2PerKg: 3.089, GreenPercent: 27.3, MeatPercent: 16.4, OrganicPercent: 38.9,
			FoodWastePercent: 8.2, LocalSourced: 39.8, Employees: 400, MealsPerDay: 340, OperatingDays: 240},
		{ID: 420, Name: "Rambøll", Location: "København Ø", Address: "Hannemanns Allé 53, 2300 København S",
			CO2PerKg: 2.456, GreenPercent: 32.1, MeatPercent: 11.8, OrganicPercent: 54.7,
			FoodWastePercent: 6.2, LocalSourced: 49.5, Employees: 300, MealsPerDay: 250, OperatingDays: 240},
		{ID: 440, Name: "Danske Bank", Location: "København V", Address: "Holmens Kanal 2-12, 1092 København K",
			CO2PerKg: 2.734, GreenPercent: 29.8, MeatPercent: 13.7, OrganicPercent: 48.2,
			FoodWastePercent: 6.9, LocalSourced: 45.3, Employees: 600, MealsPerDay: 520, OperatingDays: 240},
		{ID: 460, Name: "PFA", Location: "København Ø", Address: "Sundkrogsgade 4, 2100 København Ø",
			CO2PerKg: 2.589, GreenPercent: 31.4, MeatPercent: 12.5, OrganicPercent: 51.8,
			FoodWastePercent: 6.5, LocalSourced: 47.9, Employees: 450, MealsPerDay: 380, OperatingDays: 240},
		{ID: 480, Name: "Vestas", Location: "Aarhus N", Address: "Hedeager 42, 8200 Aarhus N",
			CO2PerKg: 2.812, GreenPercent: 28.9, MeatPercent: 14.9, OrganicPercent: 46.5,
			FoodWastePercent: 7.3, LocalSourced: 44.1, Employees: 350, MealsPerDay: 290, OperatingDays: 240},
		{ID: 500, Name: "LEGO", Location: "Billund", Address: "Åstvej 1, 7190 Billund",
			CO2PerKg: 2.376, GreenPercent: 33.6, MeatPercent: 11.2, OrganicPercent: 56.3,
			FoodWastePercent: 5.9, LocalSourced: 50.7, Employees: 550, MealsPerDay: 470, OperatingDays: 240},
		{ID: 520, Name: "Arla", Location: "Aarhus", Address: "Sønderhøj 14, 8260 Viby J",
			CO2PerKg: 3.156, GreenPercent: 26.1, MeatPercent: 17.2, OrganicPercent: 35.8,
			FoodWastePercent: 8.5, LocalSourced: 37.4, Employees: 380, MealsPerDay: 320, OperatingDays: 240},
		{ID: 540, Name: "Carlsberg", Location: "København", Address: "Ny Carlsberg Vej 100, 1799 København V",
			CO2PerKg: 2.923, GreenPercent: 27.7, MeatPercent: 15.3, OrganicPercent: 44.1,
			FoodWastePercent: 7.6, LocalSourced: 41.8, Employees: 420, MealsPerDay: 350, OperatingDays: 240},
		{ID: 560, Name: "Grundfos", Location: "Bjerringbro", Address: "Poul Due Jensens Vej 7, 8850 Bjerringbro",
			CO2PerKg: 2.645, GreenPercent: 30.5, MeatPercent: 13.2, OrganicPercent: 49.7,
			FoodWastePercent: 6.7, LocalSourced: 46.2, Employees: 400, MealsPerDay: 340, OperatingDays: 240},
		{ID: 580, Name: "Danfoss", Location: "Nordborg", Address: "Nordborgvej 81, 6430 Nordborg",
			CO2PerKg: 2.778, GreenPercent: 29.2, MeatPercent: 14.5, OrganicPercent: 47.3,
			FoodWastePercent: 7.1, LocalSourced: 44.6, Employees: 500, MealsPerDay: 420, OperatingDays: 240},
		{ID: 600, Name: "Coloplast", Location: "Humlebæk", Address: "Holtedam 1, 3050 Humlebæk",
			CO2PerKg: 2.498, GreenPercent: 31.8, MeatPercent: 12.1, OrganicPercent: 53.2,
			FoodWastePercent: 6.3, LocalSourced: 48.5, Employees: 350, MealsPerDay: 290, OperatingDays: 240},
		{ID: 620, Name: "Novozymes", Location: "Bagsværd", Address: "Krogshoejvej 36, 2880 Bagsværd",
			CO2PerKg: 2.267, GreenPercent: 34.2, MeatPercent: 10.6, OrganicPercent: 57.9,
			FoodWastePercent: 5.6, LocalSourced: 51.4, Employees: 320, MealsPerDay: 270, OperatingDays: 240},
		{ID: 640, Name: "Microsoft", Location: "Lyngby", Address: "Lyngby Hovedgade 70, 2800 Kgs. Lyngby",
			CO2PerKg: 2.134, GreenPercent: 35.9, MeatPercent: 9.7, OrganicPercent: 60.5,
			FoodWastePercent: 5.2, LocalSourced: 54.3, Employees: 280, MealsPerDay: 240, OperatingDays: 240},
		{ID: 660, Name: "IBM", Location: "Ballerup", Address: "Ringager 6C, 2605 Brøndby",
			CO2PerKg: 2.856, GreenPercent: 28.3, MeatPercent: 15.1, OrganicPercent: 45.2,
			FoodWastePercent: 7.5, LocalSourced: 42.4, Employees: 250, MealsPerDay: 210, OperatingDays: 240},
		{ID: 680, Name: "Google", Location: "Aarhus", Address: "Katrinebjergvej 93H, 8200 Aarhus N",
			CO2PerKg: 1.876, GreenPercent: 38.7, MeatPercent: 7.4, OrganicPercent: 64.8,
			FoodWastePercent: 4.8, LocalSourced: 58.9, Employees: 200, MealsPerDay: 170, OperatingDays: 240},
		{ID: 700, Name: "Siemens", Location: "Ballerup", Address: "Borupvang 3, 2750 Ballerup",
			CO2PerKg: 2.689, GreenPercent: 30.1, MeatPercent: 13.5, OrganicPercent: 50.2,
			FoodWastePercent: 6.8, LocalSourced: 46.8, Employees: 300, MealsPerDay: 250, OperatingDays: 240},
		{ID: 720, Name: "Schneider Electric", Location: "Skovlunde", Address: "Lautrupvang 1, 2750 Ballerup",
			CO2PerKg: 2.745, GreenPercent: 29.5, MeatPercent: 14.1, OrganicPercent: 48.7,
			FoodWastePercent: 7.2, LocalSourced: 45.1, Employees: 220, MealsPerDay: 180, OperatingDays: 240},
		{ID: 740, Name: "Hitachi", Location: "Søborg", Address: "Lautrupvang 6, 2750 Ballerup",
			CO2PerKg: 2.812, GreenPercent: 28.8, MeatPercent: 14.8, OrganicPercent: 46.9,
			FoodWastePercent: 7.4, LocalSourced: 44.3, Employees: 180, MealsPerDay: 150, OperatingDays: 240},
		{ID: 760, Name: "ABB", Location: "Gentofte", Address: "Helgeshøj Allé 36, 2630 Taastrup",
			CO2PerKg: 2.698, GreenPercent: 29.9, MeatPercent: 13.7, OrganicPercent: 49.5,
			FoodWastePercent: 6.9, LocalSourced: 46.4, Employees: 190, MealsPerDay: 160, OperatingDays: 240},
		{ID: 780, Name: "Aalborg University", Location: "Aalborg", Address: "Fredrik Bajers Vej 5, 9220 Aalborg Ø",
			CO2PerKg: 2.456, GreenPercent: 32.3, MeatPercent: 11.9, OrganicPercent: 54.9,
			FoodWastePercent: 6.1, LocalSourced: 49.8, Employees: 450, MealsPerDay: 380, OperatingDays: 240},
		{ID: 800, Name: "Aarhus University", Location: "Aarhus", Address: "Nordre Ringgade 1, 8000 Aarhus C",
			CO2PerKg: 2.378, GreenPercent: 33.4, MeatPercent: 11.3, OrganicPercent: 56.1,
			FoodWastePercent: 5.8, LocalSourced: 50.5, Employees: 520, MealsPerDay: 440, OperatingDays: 240},
		{ID: 820, Name: "Copenhagen Business School", Location: "Frederiksberg", Address: "Solbjerg Plads 3, 2000 Frederiksberg",
			CO2PerKg: 2.289, GreenPercent: 34.5, MeatPercent: 10.8, OrganicPercent: 58.2,
			FoodWastePercent: 5.5, LocalSourced: 51.9, Employees: 380, MealsPerDay: 320, OperatingDays: 240},
		{ID: 840, Name: "IT University", Location: "København S", Address: "Rued Langgaards Vej 7, 2300 København S",
			CO2PerKg: 2.198, GreenPercent: 35.7, MeatPercent: 10.1, OrganicPercent: 59.8,
			FoodWastePercent: 5.3, LocalSourced: 53.6, Employees: 280, MealsPerDay: 240, OperatingDays: 240},
		{ID: 860, Name: "Roskilde University", Location: "Roskilde", Address: "Universitetsvej 1, 4000 Roskilde",
			CO2PerKg: 2.534, GreenPercent: 31.6, MeatPercent: 12.3, OrganicPercent: 52.7,
			FoodWastePercent: 6.4, LocalSourced: 48.1, Employees: 320, MealsPerDay: 270, OperatingDays: 240},
		{ID: 880, Name: "SDU Odense", Location: "Odense", Address: "Campusvej 55, 5230 Odense M",
			CO2PerKg: 2.412, GreenPercent: 32.9, MeatPercent: 11.5, OrganicPercent: 55.4,
			FoodWastePercent: 6.0, LocalSourced: 50.1, Employees: 400, MealsPerDay: 340, OperatingDays: 240},
		{ID: 900, Name: "Region Hovedstaden", Location: "Hillerød", Address: "Kongens Vænge 2, 3400 Hillerød",
			CO2PerKg: 2.876, GreenPercent: 28.1, MeatPercent: 15.2, OrganicPercent: 44.8,
			FoodWastePercent: 7.6, LocalSourced: 42.1, Employees: 550, MealsPerDay: 470, OperatingDays: 240},
		{ID: 920, Name: "Region Sjælland", Location: "Sorø", Address: "Alléen 15, 4180 Sorø",
			CO2PerKg: 2.945, GreenPercent: 27.5, MeatPercent: 15.7, OrganicPercent: 43.5,
			FoodWastePercent: 7.9, LocalSourced: 40.8, Employees: 420, MealsPerDay: 350, OperatingDays: 240},
		{ID: 940, Name: "Region Syddanmark", Location: "Vejle", Address: "Damhaven 12, 7100 Vejle",
			CO2PerKg: 2.823, GreenPercent: 28.7, MeatPercent: 14.9, OrganicPercent: 46.3,
			FoodWastePercent: 7.3, LocalSourced: 43.9, Employees: 480, MealsPerDay: 400, OperatingDays: 240},
		{ID: 960, Name: "Region Midtjylland", Location: "Viborg", Address: "Skottenborg 26, 8800 Viborg",
			CO2PerKg: 2.756, GreenPercent: 29.3, MeatPercent: 14.3, OrganicPercent: 47.8,
			FoodWastePercent: 7.1, LocalSourced: 44.8, Employees: 500, MealsPerDay: 420, OperatingDays: 240},
		{ID: 980, Name: "Region Nordjylland", Location: "Aalborg", Address: "Niels Bohrs Vej 30, 9220 Aalborg Ø",
			CO2PerKg: 2.689, GreenPercent: 30.0, MeatPercent: 13.6, OrganicPercent: 49.9,
			FoodWastePercent: 6.8, LocalSourced: 46.5, Employees: 460, MealsPerDay: 390, OperatingDays: 240},
		{ID: 1000, Name: "Copenhagen Airport", Location: "Kastrup", Address: "Lufthavnsboulevarden 6, 2770 Kastrup",
			CO2PerKg: 3.234, GreenPercent: 24.5, MeatPercent: 18.1, OrganicPercent: 40.2,
			FoodWastePercent: 8.6, LocalSourced: 38.9, Employees: 650, MealsPerDay: 550, OperatingDays: 365},
		{ID: 1020, Name: "DSB", Location: "København", Address: "Telegade 2, 2630 Taastrup",
			CO2PerKg: 2.912, GreenPercent: 27.8, MeatPercent: 15.4, OrganicPercent: 44.6,
			FoodWastePercent: 7.7, LocalSourced: 41.6, Employees: 380, MealsPerDay: 320, OperatingDays: 240},
		{ID: 1040, Name: "Movia", Location: "Glostrup", Address: "Gammel Køge Landevej 3, 2500 Valby",
			CO2PerKg: 2.867, GreenPercent: 28.2, MeatPercent: 15.1, OrganicPercent: 45.1,
			FoodWastePercent: 7.5, LocalSourced: 42.3, Employees: 340, MealsPerDay: 280, OperatingDays: 240},
		{ID: 1060, Name: "Energinet", Location: "Fredericia", Address: "Tonne Kjærsvej 65, 7000 Fredericia",
			CO2PerKg: 2.634, GreenPercent: 30.6, MeatPercent: 13.1, OrganicPercent: 50.1,
			FoodWastePercent: 6.6, LocalSourced: 46.7, Employees: 290, MealsPerDay: 240, OperatingDays: 240},
		{ID: 1080, Name: "Ørsted Wind Power", Location: "Gentofte", Address: "Nesa Allé 1, 2820 Gentofte",
			CO2PerKg: 2.456, GreenPercent: 32.2, MeatPercent: 11.8, OrganicPercent: 54.6,
			FoodWastePercent: 6.2, LocalSourced: 49.3, Employees: 320, MealsPerDay: 270, OperatingDays: 240},
		{ID: 1100, Name: "DONG Energy", Location: "Skærbæk", Address: "Kraftværksvej 53, 7000 Fredericia",
			CO2PerKg: 2.789, GreenPercent: 29.1, MeatPercent: 14.6, OrganicPercent: 47.1,
			FoodWastePercent: 7.2, LocalSourced: 44.4, Employees: 350, MealsPerDay: 290, OperatingDays: 240},
		{ID: 1120, Name: "NKT", Location: "Brøndby", Address: "Ulvevej 2-14, 2605 Brøndby",
			CO2PerKg: 2.923, GreenPercent: 27.6, MeatPercent: 15.4, OrganicPercent: 43.9,
			FoodWastePercent: 7.8, LocalSourced: 41.2, Employees: 280, MealsPerDay: 230, OperatingDays: 240},
		{ID: 1140, Name: "FLSmidth", Location: "København", Address: "Vigerslev Allé 77, 2500 Valby",
			CO2PerKg: 2.845, GreenPercent: 28.4, MeatPercent: 15.0, OrganicPercent: 45.5,
			FoodWastePercent: 7.4, LocalSourced: 42.6, Employees: 310, MealsPerDay: 260, OperatingDays: 240},
		{ID: 1160, Name: "Rockwool", Location: "Hedehusene", Address: "Hovedgaden 584, 2640 Hedehusene",
			CO2PerKg: 2.978, GreenPercent: 27.1, MeatPercent: 15.8, OrganicPercent: 42.7,
			FoodWastePercent: 8.1, LocalSourced: 40.1, Employees: 330, MealsPerDay: 280, OperatingDays: 240},
		{ID: 1180, Name: "Velux", Location: "Hørsholm", Address: "Ådalsvej 99, 2970 Hørsholm",
			CO2PerKg: 2.567, GreenPercent: 31.2, MeatPercent: 12.7, OrganicPercent: 51.3,
			FoodWastePercent: 6.6, LocalSourced: 47.6, Employees: 360, MealsPerDay: 300, OperatingDays: 240},
		{ID: 1200, Name: "ISS", Location: "Søborg", Address: "Buddingevej 197, 2860 Søborg",
			CO2PerKg: 3.045, GreenPercent: 26.5, MeatPercent: 16.8, OrganicPercent: 37.8,
			FoodWastePercent: 8.3, LocalSourced: 38.7, Employees: 420, MealsPerDay: 350, OperatingDays: 240},
		{ID: 1220, Name: "G4S", Location: "Ballerup", Address: "Lautrupvang 6, 2750 Ballerup",
			CO2PerKg: 3.112, GreenPercent: 25.9, MeatPercent: 17.4, OrganicPercent: 35.1,
			FoodWastePercent: 8.7, LocalSourced: 37.2, Employees: 380, MealsPerDay: 320, OperatingDays: 240},
		{ID: 1240, Name: "Securitas", Location: "Glostrup", Address: "Ejby Industrivej 48, 2600 Glostrup",
			CO2PerKg: 3.089, GreenPercent: 26.2, MeatPercent: 17.1, OrganicPercent: 36.4,
			FoodWastePercent: 8.5, LocalSourced: 37.8, Employees: 340, MealsPerDay: 280, OperatingDays: 240},
		{ID: 1260, Name: "Falck", Location: "Brøndby", Address: "Borgmester Fischers Vej 1, 2605 Brøndby",
			CO2PerKg: 2.956, GreenPercent: 27.3, MeatPercent: 15.9, OrganicPercent: 43.2,
			FoodWastePercent: 7.9, LocalSourced: 40.5, Employees: 400, MealsPerDay: 340, OperatingDays: 240},
		{ID: 1280, Name: "TDC", Location: "København", Address: "Teglholmsgade 1, 0900 København C",
			CO2PerKg: 2.734, GreenPercent: 29.7, MeatPercent: 13.8, OrganicPercent: 48.5,
			FoodWastePercent: 6.9, LocalSourced: 45.6, Employees: 450, MealsPerDay: 380, OperatingDays: 240},
		{ID: 1300, Name: "Telenor", Location: "København", Address: "Lautrupvang 8, 2750 Ballerup",
			CO2PerKg: 2.678, GreenPercent: 30.2, MeatPercent: 13.4, OrganicPercent: 49.8,
			FoodWastePercent: 6.7, LocalSourced: 46.3, Employees: 320, MealsPerDay: 270, OperatingDays: 240},
		{ID: 1320, Name: "Telia", Location: "København", Address: "Lautrupvang 6, 2750 Ballerup",
			CO2PerKg: 2.712, GreenPercent: 29.9, MeatPercent: 13.9, OrganicPercent: 49.1,
			FoodWastePercent: 7.0, LocalSourced: 45.8, Employees: 310, MealsPerDay: 260, OperatingDays: 240},
		{ID: 1340, Name: "Nets", Location: "Ballerup", Address: "Lautrupbjerg 10, 2750 Ballerup",
			CO2PerKg: 2.645, GreenPercent: 30.4, MeatPercent: 13.3, OrganicPercent: 50.3,
			FoodWastePercent: 6.6, LocalSourced: 46.9, Employees: 290, MealsPerDay: 240, OperatingDays: 240},
		{ID: 1360, Name: "Nordea", Location: "København", Address: "Grønjordsvej 10, 2300 København S",
			CO2PerKg: 2.589, GreenPercent: 31.3, MeatPercent: 12.6, OrganicPercent: 51.7,
			FoodWastePercent: 6.4, LocalSourced: 48.2, Employees: 520, MealsPerDay: 440, OperatingDays: 240},
		{ID: 1380, Name: "Jyske Bank", Location: "Silkeborg", Address: "Vestergade 8-16, 8600 Silkeborg",
			CO2PerKg: 2.812, GreenPercent: 28.9, MeatPercent: 14.8, OrganicPercent: 46.7,
			FoodWastePercent: 7.2, LocalSourced: 44.2, Employees: 380, MealsPerDay: 320, OperatingDays: 240},
		{ID: 1400, Name: "Spar Nord", Location: "Aalborg", Address: "Skelagervej 15, 9000 Aalborg",
			CO2PerKg: 2.876, GreenPercent: 28.2, MeatPercent: 15.1, OrganicPercent: 45.3,
			FoodWastePercent: 7.5, LocalSourced: 42.5, Employees: 340, MealsPerDay: 280, OperatingDays: 240},
		{ID: 1420, Name: "Nykredit", Location: "København", Address: "Kalvebod Brygge 1-3, 1780 København V",
			CO2PerKg: 2.623, GreenPercent: 30.7, MeatPercent: 13.0, OrganicPercent: 50.6,
			FoodWastePercent: 6.5, LocalSourced: 47.1, Employees: 480, MealsPerDay: 400, OperatingDays: 240},
		{ID: 1440, Name: "PensionDanmark", Location: "København", Address: "Langelinie Allé 43, 2100 København Ø",
			CO2PerKg: 2.545, GreenPercent: 31.5, MeatPercent: 12.4, OrganicPercent: 52.4,
			FoodWastePercent: 6.3, LocalSourced: 48.6, Employees: 360, MealsPerDay: 300, OperatingDays: 240},
		{ID: 1460, Name: "AP Pension", Location: "Gentofte", Address: "Østbanegade 135, 2100 København Ø",
			CO2PerKg: 2.598, GreenPercent: 31.1, MeatPercent: 12.8, OrganicPercent: 51.5,
			FoodWastePercent: 6.5, LocalSourced: 47.8, Employees: 330, MealsPerDay: 280, OperatingDays: 240},
		{ID: 1480, Name: "PKA", Location: "København", Address: "Tuborg Havnevej 14, 2900 Hellerup",
			CO2PerKg: 2.467, GreenPercent: 32.4, MeatPercent: 11.7, OrganicPercent: 55.1,
			FoodWastePercent: 6.1, LocalSourced: 49.9, Employees: 310, MealsPerDay: 260, OperatingDays: 240},
		{ID: 1500, Name: "Industriens Pension", Location: "København", Address: "Boulevarden 15, 1790 København V",
			CO2PerKg: 2.534, GreenPercent: 31.7, MeatPercent: 12.2, OrganicPercent: 53.0,
			FoodWastePercent: 6.3, LocalSourced: 48.4, Employees: 290, MealsPerDay: 240, OperatingDays: 240},
		{ID: 1520, Name: "Sampension", Location: "København", Address: "Jarmers Plads 2, 1551 København V",
			CO2PerKg: 2.601, GreenPercent: 30.9, MeatPercent: 12.9, OrganicPercent: 51.2,
			FoodWastePercent: 6.6, LocalSourced: 47.5, Employees: 320, MealsPerDay: 270, OperatingDays: 240},
		{ID: 1540, Name: "Lærernes Pension", Location: "Ballerup", Address: "Lautrupvang 10, 2750 Ballerup",
			CO2PerKg: 2.489, GreenPercent: 32.0, MeatPercent: 12.0, OrganicPercent: 54.3,
			FoodWastePercent: 6.2, LocalSourced: 49.1, Employees: 280, MealsPerDay: 230, OperatingDays: 240},
		{ID: 1560, Name: "Velliv", Location: "København", Address: "Lautrupvang 8, 2750 Ballerup",
			CO2PerKg: 2.556, GreenPercent: 31.4, MeatPercent: 12.5, OrganicPercent: 52.6,
			FoodWastePercent: 6.4, LocalSourced: 48.3, Employees: 300, MealsPerDay: 250, OperatingDays: 240},
		{ID: 1580, Name: "Topdanmark", Location: "Ballerup", Address: "Borupvang 4, 2750 Ballerup",
			CO2PerKg: 2.723, GreenPercent: 29.8, MeatPercent: 14.0, OrganicPercent: 48.9,
			FoodWastePercent: 6.8, LocalSourced: 45.9, Employees: 340, MealsPerDay: 280, OperatingDays: 240},
		{ID: 1600, Name: "Tryg", Location: "Ballerup", Address: "Klausdalsbrovej 601, 2750 Ballerup",
			CO2PerKg: 2.689, GreenPercent: 30.1, MeatPercent: 13.6, OrganicPercent: 49.6,
			FoodWastePercent: 6.7, LocalSourced: 46.2, Employees: 360, MealsPerDay: 300, OperatingDays: 240},
	}
}
