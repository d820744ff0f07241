// User-facing reply text. Every message names the next valid action so no
// state is a conversational dead-end.
package flow

import (
	"fmt"
	"strings"

	"github.com/iceboxlab/icebox/pkg/types"
)

func msgHelp(first string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 Hi %s! Here is what I can do:\n\n", first)
	b.WriteString("• /newrefrigerator — set up or view your refrigerator\n")
	b.WriteString("• /additem <name> [quantity] [unit] — add an item\n")
	b.WriteString("• /newcuisine — set up or view your cuisines\n")
	b.WriteString("• /addingredient — add ingredients to a cuisine")
	return b.String()
}

func msgFailure(first string) string {
	return fmt.Sprintf("❌ Sorry %s, something went wrong on my side.\nPlease try again later.", first)
}

func msgLostContext() string {
	return "😕 I lost track of what we were doing.\n" +
		"Use /newcuisine or /addingredient to start over."
}

func msgCuisineWelcomeBack(first string, cuisines []types.Cuisine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍳 Welcome back to your cuisine collection, %s!\n\n", first)

	if len(cuisines) == 0 {
		b.WriteString("You don't have any cuisines yet.\n\n")
		b.WriteString("💡 Type the name of a cuisine to create it!\n")
		b.WriteString("Example: type 'Lasagne'")
		return b.String()
	}

	b.WriteString("📋 Your existing cuisines:\n\n")
	for _, c := range cuisines {
		fmt.Fprintf(&b, "• %s (%s)", c.Name, c.Filename)
		if c.Description != "" {
			fmt.Fprintf(&b, " - %s", c.Description)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n📊 Total cuisines: %d", len(cuisines))
	b.WriteString("\n\n💡 Type the name of a new cuisine to create it!")
	return b.String()
}

func msgCuisineSystemCreated(first string, spaceCreated bool) string {
	var b strings.Builder
	if spaceCreated {
		fmt.Fprintf(&b, "🎉 Congratulations, %s!\n\n📁 Your personal space has been created!\n", first)
	} else {
		fmt.Fprintf(&b, "🎉 Welcome back, %s!\n\n", first)
	}
	b.WriteString("🍳 Your cuisine collection has been set up successfully!\n\n")
	b.WriteString("Now you can create your first cuisine:\n")
	b.WriteString("💡 Type the name of a cuisine to create it!\n")
	b.WriteString("Example: type 'Lasagne'")
	return b.String()
}

func msgCuisineNameLength() string {
	return fmt.Sprintf("❌ Cuisine name must be between %d and %d characters.\nPlease try again with a valid name.",
		types.CuisineNameMinLen, types.CuisineNameMaxLen)
}

func msgCuisineConflict(name string) string {
	return fmt.Sprintf("❌ A cuisine named '%s' already exists!\n"+
		"Please choose a different name or use /newcuisine to view existing cuisines.", name)
}

func msgCuisineCreated(first, name, filename string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎉 Excellent, %s!\n\n", first)
	fmt.Fprintf(&b, "🍳 Cuisine '%s' has been created successfully!\n", name)
	fmt.Fprintf(&b, "📁 Stored as: %s\n\n", filename)
	b.WriteString(msgIngredientEntryHint(name))
	return b.String()
}

func msgIngredientEntryHint(cuisine string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Let's add ingredients to '%s' (one serving).\n", cuisine)
	b.WriteString("Send one per message: <name> <amount> <unit> [category] [notes]\n")
	b.WriteString("Example: Tomato 2 pieces vegetables\n\n")
	b.WriteString("Type 'done' when you're finished.")
	return b.String()
}

func msgSelectCuisine(cuisines []types.Cuisine) string {
	var b strings.Builder
	b.WriteString("🍳 Which cuisine should the ingredients go into?\n\n")
	for _, c := range cuisines {
		fmt.Fprintf(&b, "• %s\n", c.Name)
	}
	b.WriteString("\n💡 Type the cuisine name to select it.")
	return b.String()
}

func msgNoCuisines() string {
	return "❌ You don't have any cuisines yet!\nUse /newcuisine to create one first."
}

func msgUnknownCuisine(name string) string {
	return fmt.Sprintf("❌ I couldn't find a cuisine named '%s'.\n"+
		"Type one of your existing cuisine names, or use /newcuisine to create it.", name)
}

func msgCuisineSelected(name string, ingredients []types.Ingredient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Selected cuisine '%s'.\n\n", name)
	if len(ingredients) > 0 {
		b.WriteString("📋 Current ingredients:\n")
		for _, ing := range ingredients {
			fmt.Fprintf(&b, "• %s: %s %s\n", ing.Name, ing.Amount, ing.Unit)
		}
		b.WriteString("\n")
	}
	b.WriteString(msgIngredientEntryHint(name))
	return b.String()
}

func msgIngredientAdded(ing types.Ingredient, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Added %s: %s %s (%s)", ing.Name, ing.Amount, ing.Unit, ing.Category)
	if ing.Notes != "" {
		fmt.Fprintf(&b, " — %s", ing.Notes)
	}
	fmt.Fprintf(&b, "\n📊 Ingredients added this session: %d\n\n", count)
	b.WriteString("Send the next ingredient, or type 'done' to finish.")
	return b.String()
}

func msgIngredientFormat() string {
	return "❌ I couldn't read that ingredient.\n" +
		"Format: <name> <amount> <unit> [category] [notes]\n" +
		"Example: Tomato 2 pieces vegetables\n\n" +
		"Try again, or type 'done' to finish."
}

func msgIngredientsDone(cuisine string, count int) string {
	return fmt.Sprintf("🎉 Finished editing '%s'!\n📊 Ingredients added this session: %d\n\n"+
		"Use /addingredient to add more later.", cuisine, count)
}

func msgFridgeWelcomeBack(first string, items []types.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧊 Welcome back to your refrigerator, %s!\n\n", first)

	if len(items) == 0 {
		b.WriteString("Your refrigerator is currently empty.\n")
		b.WriteString("Use /additem to add items to your refrigerator!")
		return b.String()
	}

	b.WriteString("📋 Your current items:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s: %d %s", item.Name, item.Quantity, item.Unit)
		if item.Expiry != "" {
			fmt.Fprintf(&b, " (expires: %s)", item.Expiry)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n📊 Total items: %d", len(items))
	b.WriteString("\n\nUse /additem to add more items!")
	return b.String()
}

func msgFridgeCreated(first string, spaceCreated bool) string {
	var b strings.Builder
	if spaceCreated {
		fmt.Fprintf(&b, "🎉 Congratulations, %s!\n\n📁 Your personal space has been created!\n", first)
	} else {
		fmt.Fprintf(&b, "🎉 Welcome back, %s!\n\n", first)
	}
	b.WriteString("🧊 Your new refrigerator has been created successfully!\n\n")
	b.WriteString("You can now:\n")
	b.WriteString("• Use /additem to add items to your refrigerator\n")
	b.WriteString("• Use /newrefrigerator to view your items\n")
	b.WriteString("• Use /newcuisine to manage your cuisines")
	return b.String()
}

func msgNoFridge(first string) string {
	return fmt.Sprintf("❌ %s, you don't have a refrigerator yet!\nUse /newrefrigerator to create one first.", first)
}

func msgAddItemUsage() string {
	var b strings.Builder
	b.WriteString("📝 Please specify an item to add!\n\n")
	b.WriteString("Usage: /additem <item_name> [quantity] [unit]\n\n")
	b.WriteString("Examples:\n")
	b.WriteString("• /additem Apples 5 pieces\n")
	b.WriteString("• /additem Milk 1 liter\n")
	b.WriteString("• /additem Bread 2 loaves\n")
	b.WriteString("• /additem Eggs (default: 1 pieces)")
	return b.String()
}

func msgItemAdded(name string, quantity int, unit string) string {
	return fmt.Sprintf("✅ Successfully added to your refrigerator!\n\n"+
		"📦 Item: %s\n📊 Quantity: %d %s\n\n"+
		"Use /newrefrigerator to view all your items!", name, quantity, unit)
}

func msgEditRecipe(first string) string {
	return fmt.Sprintf("Edit your recipe, %s", first)
}

func msgEcoCuisine(first string) string {
	return fmt.Sprintf("Eco-friendly cuisine suggestions, %s", first)
}

func msgSelectFood(first string) string {
	return fmt.Sprintf("Select food options, %s", first)
}
