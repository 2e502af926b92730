package store

// SeedCatalog is the built-in exhibitor catalog used when the exhibitors
// table is empty. In production the table is loaded by the organizer's import
// tooling; the seed keeps local and test deployments usable out of the box.
var SeedCatalog = []Exhibitor{
	{ID: 1, Name: "Al Rawabi Dairy Company", Sector: "Dairy", Country: "United Arab Emirates", Description: "Fresh milk, laban, and juice producer serving the GCC with daily cold-chain distribution.", Booth: "Z1-A10"},
	{ID: 2, Name: "Almarai", Sector: "Dairy", Country: "Saudi Arabia", Description: "Vertically integrated dairy and food group covering milk, yoghurt, cheese, and bakery lines.", Booth: "Z1-A14"},
	{ID: 3, Name: "Arla Foods Ingredients", Sector: "Dairy", Country: "Denmark", Description: "Whey protein and milk-based ingredient solutions for infant, sports, and medical nutrition.", Booth: "Z1-B02"},
	{ID: 4, Name: "Lactalis International", Sector: "Dairy", Country: "France", Description: "Cheese, butter, and milk powder exporter with halal-certified production sites.", Booth: "Z1-B08"},
	{ID: 5, Name: "Fonterra", Sector: "Dairy", Country: "New Zealand", Description: "Grass-fed dairy cooperative exporting milk powders and foodservice butter and cream.", Booth: "Z1-B11"},
	{ID: 6, Name: "Barakat Quality Plus", Sector: "Beverages", Country: "United Arab Emirates", Description: "Fresh juices, smoothies, and cut fruit prepared daily for retail and hospitality.", Booth: "Z2-C01"},
	{ID: 7, Name: "Rauch Fruchtsaefte", Sector: "Beverages", Country: "Austria", Description: "Fruit juice and iced tea manufacturer with private-label bottling capacity.", Booth: "Z2-C05"},
	{ID: 8, Name: "Aujan Coca-Cola Beverages", Sector: "Beverages", Country: "Saudi Arabia", Description: "Regional bottler behind Rani and Barbican with wide GCC route-to-market coverage.", Booth: "Z2-C09"},
	{ID: 9, Name: "Dilmah Ceylon Tea", Sector: "Beverages", Country: "Sri Lanka", Description: "Single-origin Ceylon tea grower offering retail, foodservice, and gourmet ranges.", Booth: "Z2-C12"},
	{ID: 10, Name: "Lavazza", Sector: "Beverages", Country: "Italy", Description: "Espresso roaster supplying beans, capsules, and barista training programmes.", Booth: "Z2-C18"},
	{ID: 11, Name: "Al Islami Foods", Sector: "Meat & Poultry", Country: "United Arab Emirates", Description: "Halal frozen chicken, beef, and ready meals with GCC-wide retail distribution.", Booth: "Z3-D03"},
	{ID: 12, Name: "BRF", Sector: "Meat & Poultry", Country: "Brazil", Description: "One of the world's largest poultry exporters, owner of the Sadia brand.", Booth: "Z3-D07"},
	{ID: 13, Name: "Tanmiah Food Company", Sector: "Meat & Poultry", Country: "Saudi Arabia", Description: "Integrated poultry producer spanning hatcheries, processing, and foodservice supply.", Booth: "Z3-D10"},
	{ID: 14, Name: "Siniora Food Industries", Sector: "Meat & Poultry", Country: "Jordan", Description: "Premium deli meats and cold cuts with halal certification across all lines.", Booth: "Z3-D13"},
	{ID: 15, Name: "Crown Poultry", Sector: "Meat & Poultry", Country: "Ukraine", Description: "Chilled and frozen chicken exporter with IQF portioning for foodservice buyers.", Booth: "Z3-D16"},
	{ID: 16, Name: "Al Ghurair Foods", Sector: "Pulses, Grains & Cereals", Country: "United Arab Emirates", Description: "Flour milling, pasta, and oat processing with bulk and retail pack formats.", Booth: "Z4-E02"},
	{ID: 17, Name: "LT Foods", Sector: "Pulses, Grains & Cereals", Country: "India", Description: "Basmati rice miller behind Daawat with organic and ready-to-heat ranges.", Booth: "Z4-E06"},
	{ID: 18, Name: "Ardent Mills", Sector: "Pulses, Grains & Cereals", Country: "United States", Description: "Flour and grain innovation supplier covering ancient grains and gluten-free blends.", Booth: "Z4-E09"},
	{ID: 19, Name: "Tiryaki Agro", Sector: "Pulses, Grains & Cereals", Country: "Turkey", Description: "Pulses, nuts, and grain trader with origination across five continents.", Booth: "Z4-E12"},
	{ID: 20, Name: "Sunrise Foods International", Sector: "Pulses, Grains & Cereals", Country: "Canada", Description: "Organic grain and pulse supply chains from prairie farms to global buyers.", Booth: "Z4-E15"},
	{ID: 21, Name: "IFFCO Group", Sector: "Fats & Oils", Country: "United Arab Emirates", Description: "Edible oils, specialty fats, and culinary brands including Rahma and Noor.", Booth: "Z5-F01"},
	{ID: 22, Name: "Sime Darby Oils", Sector: "Fats & Oils", Country: "Malaysia", Description: "Certified sustainable palm oil refiner for bakery, frying, and infant formula fats.", Booth: "Z5-F04"},
	{ID: 23, Name: "Borges International", Sector: "Fats & Oils", Country: "Spain", Description: "Olive oil, nut, and Mediterranean pantry brands with global retail presence.", Booth: "Z5-F07"},
	{ID: 24, Name: "Hayat Kimya Food Division", Sector: "Fats & Oils", Country: "Turkey", Description: "Sunflower oil bottler with private-label programmes for discount retail.", Booth: "Z5-F09"},
	{ID: 25, Name: "Ulker", Sector: "Snacks & Confectionery", Country: "Turkey", Description: "Biscuits, chocolate, and wafer portfolio with regional manufacturing in the GCC.", Booth: "Z6-G02"},
	{ID: 26, Name: "Notions Group", Sector: "Snacks & Confectionery", Country: "United Arab Emirates", Description: "Chocolate bites and date-based confectionery under the Maison Samira Maatouk label.", Booth: "Z6-G05"},
	{ID: 27, Name: "Loacker", Sector: "Snacks & Confectionery", Country: "Italy", Description: "Alpine wafer and chocolate specialities made without added flavourings.", Booth: "Z6-G08"},
	{ID: 28, Name: "Al Seedawi Sweets", Sector: "Snacks & Confectionery", Country: "Kuwait", Description: "Toffees, jellies, and seasonal assortments exported to 60 markets.", Booth: "Z6-G11"},
	{ID: 29, Name: "Best Food Company", Sector: "Snacks & Confectionery", Country: "United Arab Emirates", Description: "Nuts, kernels, and dried fruit roasted and packed in Dubai since 1991.", Booth: "Z6-G14"},
	{ID: 30, Name: "Nestle Health Science", Sector: "Health & Wellness", Country: "Switzerland", Description: "Active nutrition, supplements, and medical nutrition science brands.", Booth: "Z7-H01"},
	{ID: 31, Name: "NOW Health Group", Sector: "Health & Wellness", Country: "United States", Description: "Vitamins, sports nutrition, and natural foods for specialty retail.", Booth: "Z7-H04"},
	{ID: 32, Name: "Bioglan", Sector: "Health & Wellness", Country: "Australia", Description: "Superfood powders and wellness supplements for pharmacy channels.", Booth: "Z7-H06"},
	{ID: 33, Name: "Alpro", Sector: "Health & Wellness", Country: "Belgium", Description: "Plant-based drinks and alternatives to yoghurt built on soya, oat, and almond.", Booth: "Z7-H09"},
	{ID: 34, Name: "Organic India", Sector: "Health & Wellness", Country: "India", Description: "Certified organic teas, infusions, and ayurvedic wellness foods.", Booth: "Z7-H12"},
	{ID: 35, Name: "Al Foah Dates", Sector: "World Food", Country: "United Arab Emirates", Description: "The world's largest date processor, packing premium Emirati varieties.", Booth: "Z8-J01"},
	{ID: 36, Name: "Indomie Distribution", Sector: "World Food", Country: "Indonesia", Description: "Instant noodle ranges with halal certification and regional flavour lines.", Booth: "Z8-J04"},
	{ID: 37, Name: "Thai Trade Pavilion", Sector: "World Food", Country: "Thailand", Description: "Jasmine rice, sauces, and canned fruit from 40 Thai exporters under one roof.", Booth: "Z8-J07"},
	{ID: 38, Name: "Hellenic Fine Foods", Sector: "World Food", Country: "Greece", Description: "Olives, feta, and Mediterranean deli products from cooperative producers.", Booth: "Z8-J10"},
	{ID: 39, Name: "Mexico Calidad Suprema", Sector: "World Food", Country: "Mexico", Description: "Avocados, limes, and berries with certified cold-chain export programmes.", Booth: "Z8-J13"},
	{ID: 40, Name: "Seafood Souq", Sector: "Seafood", Country: "United Arab Emirates", Description: "Digital marketplace for fully traceable fresh and frozen seafood.", Booth: "Z9-K02"},
	{ID: 41, Name: "Norwegian Seafood Council", Sector: "Seafood", Country: "Norway", Description: "Salmon, fjord trout, and cod promotion body representing Norwegian exporters.", Booth: "Z9-K05"},
	{ID: 42, Name: "Oman Fisheries", Sector: "Seafood", Country: "Oman", Description: "Wild-caught tuna, kingfish, and cuttlefish processed on the Arabian Sea coast.", Booth: "Z9-K08"},
	{ID: 43, Name: "Vinh Hoan Corporation", Sector: "Seafood", Country: "Vietnam", Description: "Pangasius fillets and collagen products from vertically integrated farming.", Booth: "Z9-K11"},
	{ID: 44, Name: "Emirates Snack Foods", Sector: "Food Service", Country: "United Arab Emirates", Description: "HoReCa distributor importing speciality brands for hotels and cafes.", Booth: "Z10-L01"},
	{ID: 45, Name: "Bidfood Middle East", Sector: "Food Service", Country: "United Arab Emirates", Description: "Broadline foodservice distribution with chef-led culinary support.", Booth: "Z10-L04"},
	{ID: 46, Name: "McCain Foodservice", Sector: "Food Service", Country: "Canada", Description: "Frozen potato and appetiser solutions for quick-service and casual dining.", Booth: "Z10-L07"},
	{ID: 47, Name: "Unilever Food Solutions", Sector: "Food Service", Country: "Netherlands", Description: "Professional kitchen ingredients, bouillons, and menu consultancy.", Booth: "Z10-L10"},
	{ID: 48, Name: "Bakemart International", Sector: "Bakery", Country: "United Arab Emirates", Description: "Artisan breads, cakes, and frozen bake-off ranges for retail and HoReCa.", Booth: "Z11-M02"},
	{ID: 49, Name: "Lesaffre", Sector: "Bakery", Country: "France", Description: "Yeast, sourdough starters, and baking ingredient expertise since 1853.", Booth: "Z11-M05"},
	{ID: 50, Name: "Switz Group", Sector: "Bakery", Country: "United Arab Emirates", Description: "Puff pastry, parathas, and bakery convenience under the Switz brand.", Booth: "Z11-M08"},
	{ID: 51, Name: "Corbion Bakery Solutions", Sector: "Bakery", Country: "Netherlands", Description: "Enzymes, emulsifiers, and shelf-life solutions for industrial baking.", Booth: "Z11-M11"},
	{ID: 52, Name: "Gulfood Innovation Hub", Sector: "Food Tech", Country: "United Arab Emirates", Description: "Showcase of alt-protein, precision fermentation, and agri-tech startups.", Booth: "Z12-N01"},
	{ID: 53, Name: "Eat Just", Sector: "Food Tech", Country: "United States", Description: "Plant-based egg products and cultivated chicken approved for sale in the region.", Booth: "Z12-N04"},
	{ID: 54, Name: "Aleph Farms", Sector: "Food Tech", Country: "Israel", Description: "Cultivated beef steaks grown from non-modified cattle cells.", Booth: "Z12-N07"},
	{ID: 55, Name: "Tetra Pak", Sector: "Food Tech", Country: "Sweden", Description: "Aseptic carton packaging and processing lines for dairy and beverages.", Booth: "Z12-N10"},
}
