package entity

// Topic is a history exam topic. Its ID is used as the category of
// informations and questions.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var HistoryTopics = []Topic{
	{ID: "ilk_cag", Name: "İlk Çağ"},
	{ID: "turk_dunyasi", Name: "Türk Dünyası"},
	{ID: "islam_medeniyeti", Name: "İslam Medeniyeti"},
	{ID: "turk_islam", Name: "Türk İslam"},
	{ID: "anadolu_selcuklu", Name: "Anadolu Selçuklu"},
	{ID: "beylikten_devlete", Name: "Osmanlı Kuruluş"},
	{ID: "deka_dunya", Name: "Osmanlı Dünya Gücü"},
	{ID: "degisen_dunya", Name: "Osmanlı Siyaseti"},
	{ID: "degisim_cagi", Name: "Osmanlı Modernleşme"},
}

// IsValidCategory reports whether category names a known topic.
func IsValidCategory(category string) bool {
	for _, t := range HistoryTopics {
		if t.ID == category {
			return true
		}
	}
	return false
}

// TopicName returns the display name of a category, or the category itself.
func TopicName(category string) string {
	for _, t := range HistoryTopics {
		if t.ID == category {
			return t.Name
		}
	}
	return category
}
