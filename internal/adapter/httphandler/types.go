package httphandler

import "github.com/styleloom/outfitter/internal/core/domain"

type (
	Product struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Price         float64  `json:"price"`
		OriginalPrice float64  `json:"original_price"`
		Rating        float64  `json:"rating"`
		Reviews       int      `json:"reviews"`
		Image         string   `json:"image"`
		Category      string   `json:"category"`
		Seller        string   `json:"seller"`
		Description   string   `json:"description"`
		Features      []string `json:"features,omitempty"`
		Colors        []string `json:"colors,omitempty"`
		Sizes         []string `json:"sizes,omitempty"`
		InStock       bool     `json:"in_stock"`
		Source        string   `json:"source"`
		URL           string   `json:"url,omitempty"`
	}

	SearchRequest struct {
		Query string `json:"query"`
	}

	SearchResponse struct {
		Success             bool      `json:"success"`
		Products            []Product `json:"products"`
		Reasoning           string    `json:"reasoning"`
		PersonalizedMessage string    `json:"personalized_message"`
	}

	OutfitRequest struct {
		Anchor   Product   `json:"anchor"`
		Pool     []Product `json:"pool"`
		Occasion string    `json:"occasion"`
		Budget   float64   `json:"budget"`
	}

	OutfitComplements struct {
		Tops        []Product `json:"tops"`
		Bottoms     []Product `json:"bottoms"`
		Footwear    []Product `json:"footwear"`
		Accessories []Product `json:"accessories"`
		Outerwear   []Product `json:"outerwear"`
	}

	OutfitResponse struct {
		Success       bool              `json:"success"`
		Anchor        Product           `json:"anchor"`
		Complements   OutfitComplements `json:"complements"`
		TotalPrice    float64           `json:"total_price"`
		StylingTips   string            `json:"styling_tips"`
		OccasionMatch string            `json:"occasion_match"`
	}

	ViewRequest struct {
		Product Product `json:"product"`
	}

	CreateFolderRequest struct {
		Name string `json:"name"`
	}

	Folder struct {
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Products []Product `json:"products"`
	}

	FoldersResponse struct {
		Success bool     `json:"success"`
		Folders []Folder `json:"folders"`
	}

	FolderResponse struct {
		Success bool   `json:"success"`
		Folder  Folder `json:"folder"`
	}

	AddProductRequest struct {
		Product Product `json:"product"`
	}

	FailureResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
)

func toDomainProduct(p Product) domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Image:         p.Image,
		Category:      p.Category,
		Seller:        p.Seller,
		Description:   p.Description,
		Features:      p.Features,
		Colors:        p.Colors,
		Sizes:         p.Sizes,
		InStock:       p.InStock,
		Source:        p.Source,
		URL:           p.URL,
	}
}

func toDomainProducts(ps []Product) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		out[i] = toDomainProduct(p)
	}
	return out
}

func fromDomainProduct(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Image:         p.Image,
		Category:      p.Category,
		Seller:        p.Seller,
		Description:   p.Description,
		Features:      p.Features,
		Colors:        p.Colors,
		Sizes:         p.Sizes,
		InStock:       p.InStock,
		Source:        p.Source,
		URL:           p.URL,
	}
}

func fromDomainProducts(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = fromDomainProduct(p)
	}
	return out
}

func fromDomainComplements(c domain.OutfitComplements) OutfitComplements {
	return OutfitComplements{
		Tops:        fromDomainProducts(c.Tops),
		Bottoms:     fromDomainProducts(c.Bottoms),
		Footwear:    fromDomainProducts(c.Footwear),
		Accessories: fromDomainProducts(c.Accessories),
		Outerwear:   fromDomainProducts(c.Outerwear),
	}
}

func fromDomainFolder(f domain.WishlistFolder) Folder {
	return Folder{
		ID:       f.ID,
		Name:     f.Name,
		Products: fromDomainProducts(f.Products),
	}
}
