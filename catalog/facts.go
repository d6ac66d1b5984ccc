package catalog

// Fact is a pre-authored collectible record, bound to a board position at generation time
type Fact struct {
	Category Category `json:"category"`
	Glyph    string   `json:"glyph"`
	Message  string   `json:"message"`
	Points   int      `json:"points"`
	Color    string   `json:"color"`
}

// Title returns the popup heading for this fact
func (f Fact) Title() string {
	return f.Category.Title()
}

// GuideEntry is one row of the menu screen item guide
type GuideEntry struct {
	Category Category `json:"category"`
	Glyph    string   `json:"glyph"`
	Name     string   `json:"name"`
	Points   int      `json:"points"`
}

var defaultFacts = []Fact{
	// Fruits
	{CategoryFruit, "🍎", "Apples are rich in fiber and antioxidants! Eating fruits daily boosts immunity.", 10, "#ff6b6b"},
	{CategoryFruit, "🍌", "Bananas are high in potassium which helps maintain healthy blood pressure.", 10, "#ffd93d"},
	{CategoryFruit, "🍓", "Strawberries are packed with Vitamin C and antioxidants for skin health.", 10, "#ff6b6b"},
	{CategoryFruit, "🍊", "Oranges provide Vitamin C that helps with iron absorption and immune function.", 10, "#ffa726"},

	// Vegetables
	{CategoryVegetable, "🥦", "Broccoli contains compounds that may help reduce cancer risk.", 12, "#4caf50"},
	{CategoryVegetable, "🥕", "Carrots are excellent for eye health due to high Vitamin A content.", 12, "#ff9800"},
	{CategoryVegetable, "🍅", "Tomatoes are rich in lycopene, which promotes heart health.", 12, "#f44336"},

	// Nuts & Seeds
	{CategoryNut, "🥜", "Nuts are heart-healthy fats that can lower bad cholesterol levels.", 15, "#8d6e63"},
	{CategoryNut, "🌰", "Walnuts contain omega-3 fatty acids that support brain function.", 15, "#795548"},

	// Proteins
	{CategoryProtein, "🥩", "Lean proteins help build and repair muscles and tissues.", 15, "#d32f2f"},
	{CategoryProtein, "🥚", "Eggs are a complete protein source with all essential amino acids.", 15, "#fff9c4"},

	// Dairy
	{CategoryDairy, "🥛", "Dairy products provide calcium for strong bones and teeth.", 12, "#f5f5f5"},
	{CategoryDairy, "🧀", "Cheese contains probiotics that support gut health.", 12, "#ffeb3b"},

	// Grains
	{CategoryGrain, "🌾", "Whole grains provide sustained energy and digestive health benefits.", 10, "#d7ccc8"},
	{CategoryGrain, "🍞", "Whole wheat bread offers more fiber and nutrients than white bread.", 10, "#d7ccc8"},

	// Vitamins & Supplements
	{CategoryVitamin, "💊", "Vitamin D from sunlight helps calcium absorption for bone health.", 20, "#bb86fc"},
	{CategoryVitamin, "🅱️", "B vitamins help convert food into energy and support brain function.", 20, "#bb86fc"},

	// Water & Hydration
	{CategoryWater, "💧", "Water is essential for every cell and function in your body.", 8, "#2196f3"},

	// Exercise
	{CategoryExercise, "🏃", "30 minutes of daily exercise reduces heart disease risk by 35%.", 25, "#4caf50"},
	{CategoryExercise, "🚴", "Cycling improves cardiovascular fitness and leg strength.", 25, "#4caf50"},

	// Sleep
	{CategorySleep, "😴", "7-9 hours of sleep nightly improves memory and immune function.", 20, "#5c6bc0"},

	// Mental Health
	{CategoryMental, "🧠", "Meditation reduces stress and improves emotional well-being.", 18, "#7e57c2"},

	// Hygiene
	{CategoryHygiene, "🧼", "Handwashing prevents spread of germs and infectious diseases.", 15, "#26c6da"},

	// Safety
	{CategorySafety, "🚭", "Avoiding smoking reduces risk of lung cancer and heart disease.", 30, "#78909c"},
}

var guide = []GuideEntry{
	{CategoryFruit, "🍎", "Fruits", 10},
	{CategoryVegetable, "🥦", "Vegetables", 12},
	{CategoryNut, "🥜", "Nuts", 15},
	{CategoryProtein, "🥩", "Proteins", 15},
	{CategoryDairy, "🥛", "Dairy", 12},
	{CategoryGrain, "🌾", "Grains", 10},
	{CategoryVitamin, "💊", "Vitamins", 20},
	{CategoryWater, "💧", "Water", 8},
	{CategoryExercise, "🏃", "Exercise", 25},
	{CategorySleep, "😴", "Sleep", 20},
}

// LoadingFacts rotate on the loading screen
var LoadingFacts = []string{
	"Did you know? Drinking water first thing in the morning boosts metabolism!",
	"Regular exercise can improve your mood and reduce stress!",
	"Eating a rainbow of fruits and vegetables ensures diverse nutrients!",
	"Sleep is crucial for memory consolidation and immune function!",
	"Meditation for just 10 minutes daily can improve focus and reduce anxiety!",
}

// Default returns a copy of the built-in fact catalog
func Default() []Fact {
	out := make([]Fact, len(defaultFacts))
	copy(out, defaultFacts)
	return out
}

// Guide returns a copy of the menu item guide
func Guide() []GuideEntry {
	out := make([]GuideEntry, len(guide))
	copy(out, guide)
	return out
}
