package translate

import "github.com/ryuki04/lexbot/internal/i18n"

// staticTranslations is a small hand-authored table consulted before any
// service call. Common classroom words stay instant and free.
var staticTranslations = map[Key]string{
	{Word: "apple", Lang: i18n.Japanese}: "りんご",
	{Word: "sun", Lang: i18n.Japanese}:   "太陽",
	{Word: "moon", Lang: i18n.Japanese}:  "月",
	{Word: "water", Lang: i18n.Japanese}: "水",
	{Word: "cat", Lang: i18n.Japanese}:   "猫",
	{Word: "dog", Lang: i18n.Japanese}:   "犬",
	{Word: "book", Lang: i18n.Japanese}:  "本",
	{Word: "house", Lang: i18n.Japanese}: "家",

	{Word: "apple", Lang: i18n.Spanish}: "manzana",
	{Word: "sun", Lang: i18n.Spanish}:   "sol",
	{Word: "moon", Lang: i18n.Spanish}:  "luna",
	{Word: "water", Lang: i18n.Spanish}: "agua",
	{Word: "cat", Lang: i18n.Spanish}:   "gato",
	{Word: "dog", Lang: i18n.Spanish}:   "perro",
	{Word: "book", Lang: i18n.Spanish}:  "libro",
	{Word: "house", Lang: i18n.Spanish}: "casa",

	{Word: "りんご", Lang: i18n.English}: "apple",
	{Word: "太陽", Lang: i18n.English}:  "sun",
	{Word: "月", Lang: i18n.English}:   "moon",
	{Word: "水", Lang: i18n.English}:   "water",
	{Word: "猫", Lang: i18n.English}:   "cat",
	{Word: "犬", Lang: i18n.English}:   "dog",
}

// staticLookup returns the hand-authored translation, if any.
func staticLookup(word string, lang i18n.Lang) (string, bool) {
	v, ok := staticTranslations[Key{Word: word, Lang: lang}]
	return v, ok
}
