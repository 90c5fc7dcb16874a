package catalog

import "krystal/internal/domain/entity"

func seedColorFinishes() []entity.ColorFinish {
	return []entity.ColorFinish{
		{ID: "color-white", Name: "Brilliant White", Code: "#FFFFFF", Category: "solid", Image: images["texture_white"], IsPopular: true},
		{ID: "color-cream", Name: "Cream", Code: "#FFFDD0", Category: "solid", Image: images["texture_white"]},
		{ID: "color-grey", Name: "Anthracite Grey", Code: "#383E42", Category: "solid", Image: images["texture_white"], IsPopular: true},
		{ID: "color-oak", Name: "Golden Oak", Code: "#B5651D", Category: "wood_texture", Image: images["texture_wood"], IsPopular: true},
		{ID: "color-walnut", Name: "Walnut", Code: "#5D4037", Category: "wood_texture", Image: images["texture_wood"]},
		{ID: "color-mahogany", Name: "Mahogany", Code: "#4E0000", Category: "wood_texture", Image: images["texture_wood"]},
	}
}

func seedGlassOptions() []entity.GlassOption {
	return []entity.GlassOption{
		{ID: "glass-clear", Name: "Clear Float Glass", Description: "Standard transparent glass for maximum light transmission.", Benefits: []string{"Maximum natural light", "Clear views", "Cost effective"}, Image: images["glass_1"]},
		{ID: "glass-tinted", Name: "Tinted Glass", Description: "Solar control tinted glass reduces heat and glare.", Benefits: []string{"Reduces solar heat", "Glare reduction", "Privacy enhancement"}, Image: images["glass_1"]},
		{ID: "glass-lowe", Name: "Low-E Glass", Description: "Low emissivity coating reflects heat while allowing light.", Benefits: []string{"Superior insulation", "UV protection", "Energy savings"}, Image: images["glass_2"]},
		{ID: "glass-laminated", Name: "Laminated Glass", Description: "PVB interlayer provides safety, security, and acoustic benefits.", Benefits: []string{"Safety if broken", "Noise reduction", "UV blocking"}, Image: images["glass_2"]},
		{ID: "glass-frosted", Name: "Frosted/Obscure Glass", Description: "Privacy glass that allows light but obscures view.", Benefits: []string{"Privacy", "Soft light", "Decorative"}, Image: images["glass_1"]},
	}
}

func seedHardware() []entity.Hardware {
	return []entity.Hardware{
		{ID: "hw-handles", Name: "Premium Handles", Category: "handles", Description: "Ergonomic handles from Hoppe, Roto, and Siegenia in various finishes.", Image: images["hardware_1"]},
		{ID: "hw-hinges", Name: "Adjustable Hinges", Category: "hinges", Description: "3D adjustable hinges for perfect alignment and smooth operation.", Image: images["hardware_1"]},
		{ID: "hw-locks", Name: "Multi-point Locks", Category: "locks", Description: "Security multi-point locking systems engaging at multiple points.", Image: images["hardware_1"]},
		{ID: "hw-mesh", Name: "Mosquito Mesh", Category: "accessories", Description: "Integrated fly screens in various mesh types—fiberglass, SS, and pleated.", Image: images["hardware_1"]},
	}
}

func seedDownloads() []entity.Download {
	return []entity.Download{
		{ID: "dl-brochure", Title: "Krystal Product Brochure", Description: "Complete catalog of our uPVC windows and doors with specifications.", Category: "brochure", FileURL: "#", FileType: "pdf", FileSize: ptr("4.2 MB")},
		{ID: "dl-care", Title: "Care & Maintenance Guide", Description: "Tips for keeping your uPVC products in perfect condition.", Category: "care_guide", FileURL: "#", FileType: "pdf", FileSize: ptr("1.1 MB")},
		{ID: "dl-warranty", Title: "Warranty Policy Document", Description: "Detailed terms and conditions of our product warranties.", Category: "warranty", FileURL: "#", FileType: "pdf", FileSize: ptr("520 KB")},
		{ID: "dl-cert", Title: "Quality Certifications", Description: "ISO and quality certifications for our manufacturing processes.", Category: "certification", FileURL: "#", FileType: "pdf", FileSize: ptr("2.3 MB")},
	}
}
