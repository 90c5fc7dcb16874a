package catalog

import "krystal/internal/domain/entity"

func seedProducts() []entity.Product {
	windows := []entity.Product{
		{
			ID:               "prod-casement-window",
			Slug:             "casement-windows",
			Name:             "Casement Windows",
			Category:         "windows",
			ProductType:      "casement",
			ShortDescription: "Classic side-hinged windows with excellent ventilation and unobstructed views.",
			Description:      "Our casement windows combine timeless design with modern uPVC technology. Opening outward on side hinges, they provide maximum ventilation and easy cleaning. The multi-point locking system ensures superior security while the premium weathersealing delivers exceptional acoustic and thermal performance.",
			HeroImage:        images["casement_window"],
			Gallery:          []string{images["casement_window"], images["interior_1"], images["glass_1"]},
			Features:         []string{"Multi-point locking system", "90° opening capability", "Easy-clean hinges", "Friction stays for controlled opening", "Child-safe restrictors available"},
			Benefits:         []string{"Superior ventilation", "Unobstructed views", "Easy maintenance", "Enhanced security", "Weather resistant"},
			UseCases:         []string{"Living rooms", "Bedrooms", "Study rooms", "Home offices"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "60mm - 70mm"},
				{Label: "Glass Options", Value: "Single/Double/Triple glazed"},
				{Label: "U-Value", Value: "As low as 1.4 W/m²K"},
				{Label: "Sound Reduction", Value: "Up to 42 dB"},
				{Label: "Max Size", Value: "1200mm x 1500mm per sash"},
			},
			RelatedProducts: []string{"prod-sliding-window", "prod-tilt-turn-window"},
			IsFeatured:      true,
			Order:           1,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-sliding-window",
			Slug:             "sliding-windows",
			Name:             "Sliding Windows",
			Category:         "windows",
			ProductType:      "sliding",
			ShortDescription: "Space-saving horizontal sliding windows ideal for modern apartments and balconies.",
			Description:      "Sliding windows glide horizontally on smooth roller tracks, making them perfect for areas where space is at a premium. Our uPVC sliding windows feature precision-engineered rollers for effortless operation, interlock design for enhanced security, and superior weathersealing for comfort in all seasons.",
			HeroImage:        images["sliding_window"],
			Gallery:          []string{images["sliding_window"], images["interior_2"], images["villa_1"]},
			Features:         []string{"Smooth roller mechanism", "Interlock design", "Multi-track options", "Mosquito mesh compatible", "Anti-lift blocks"},
			Benefits:         []string{"Space efficient", "Easy operation", "Modern aesthetics", "Excellent for balconies", "Low maintenance"},
			UseCases:         []string{"Balconies", "Apartments", "High-rise buildings", "Compact spaces"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "60mm - 80mm"},
				{Label: "Track Options", Value: "2-track, 3-track, 4-track"},
				{Label: "Glass Thickness", Value: "5mm - 24mm"},
				{Label: "Sound Reduction", Value: "Up to 38 dB"},
				{Label: "Max Panel Size", Value: "1500mm x 2400mm"},
			},
			RelatedProducts: []string{"prod-casement-window", "prod-fixed-window"},
			IsFeatured:      true,
			Order:           2,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-tilt-turn-window",
			Slug:             "tilt-turn-windows",
			Name:             "Tilt & Turn Windows",
			Category:         "windows",
			ProductType:      "tilt_turn",
			ShortDescription: "Versatile European-style windows with dual opening modes for ventilation and cleaning.",
			Description:      "Tilt and turn windows offer the ultimate in flexibility. Tilt inward from the top for secure ventilation, or turn fully inward for easy cleaning and maximum airflow. The sophisticated German-engineered hardware ensures smooth operation and outstanding security.",
			HeroImage:        images["tilt_turn_window"],
			Gallery:          []string{images["tilt_turn_window"], images["interior_1"], images["glass_2"]},
			Features:         []string{"Dual-mode operation", "German hardware", "Inward opening", "Multi-point locking", "Night vent position"},
			Benefits:         []string{"Secure ventilation", "Easy cleaning from inside", "European design", "Child-safe vent mode", "Superior sealing"},
			UseCases:         []string{"High-rise apartments", "Bedrooms", "Children's rooms", "Offices"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "70mm - 82mm"},
				{Label: "Hardware", Value: "Roto/Siegenia/GU"},
				{Label: "U-Value", Value: "As low as 1.2 W/m²K"},
				{Label: "Sound Reduction", Value: "Up to 45 dB"},
				{Label: "Security", Value: "RC2 rated available"},
			},
			RelatedProducts: []string{"prod-casement-window", "prod-fixed-window"},
			IsFeatured:      true,
			Order:           3,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-fixed-window",
			Slug:             "fixed-windows",
			Name:             "Fixed Windows",
			Category:         "windows",
			ProductType:      "fixed",
			ShortDescription: "Non-opening windows for maximum light and uninterrupted views.",
			Description:      "Fixed windows are designed to maximize natural light and provide panoramic views without any frame obstructions. Perfect for areas where ventilation is not required, they offer superior thermal and acoustic insulation with clean, minimal aesthetics.",
			HeroImage:        images["fixed_window"],
			Gallery:          []string{images["fixed_window"], images["villa_2"], images["commercial_1"]},
			Features:         []string{"Frameless look options", "Large glass areas", "Structural glazing available", "Custom shapes", "Energy efficient"},
			Benefits:         []string{"Maximum light", "Unobstructed views", "Best insulation", "Minimal frames", "Architectural flexibility"},
			UseCases:         []string{"Picture windows", "Stairwells", "Commercial facades", "Feature walls"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "60mm - 70mm"},
				{Label: "Max Size", Value: "2500mm x 3000mm"},
				{Label: "Glass Options", Value: "Up to 44mm triple glazed"},
				{Label: "U-Value", Value: "As low as 1.0 W/m²K"},
				{Label: "Sound Reduction", Value: "Up to 48 dB"},
			},
			RelatedProducts: []string{"prod-casement-window", "prod-french-window"},
			Order:           4,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-top-hung-window",
			Slug:             "top-hung-windows",
			Name:             "Top Hung / Ventilator Windows",
			Category:         "windows",
			ProductType:      "top_hung",
			ShortDescription: "Compact awning-style windows perfect for ventilation in kitchens and bathrooms.",
			Description:      "Top hung windows open outward from the bottom, hinged at the top. This design allows ventilation even during light rain while maintaining privacy. Ideal for kitchens, bathrooms, and utility areas where space and moisture management are priorities.",
			HeroImage:        images["top_hung_window"],
			Gallery:          []string{images["top_hung_window"], images["casement_window"]},
			Features:         []string{"Rain-resistant ventilation", "Compact design", "Friction stays", "Easy operation", "Privacy focused"},
			Benefits:         []string{"Ventilate during rain", "Space efficient", "Privacy maintained", "Moisture control", "Easy cleaning"},
			UseCases:         []string{"Kitchens", "Bathrooms", "Utility rooms", "Garages"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "60mm"},
				{Label: "Opening Angle", Value: "Up to 60°"},
				{Label: "Glass Options", Value: "Frosted/Clear/Tinted"},
				{Label: "Max Size", Value: "1200mm x 600mm"},
			},
			RelatedProducts: []string{"prod-casement-window", "prod-fixed-window"},
			Order:           5,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-french-window",
			Slug:             "french-windows",
			Name:             "French Windows",
			Category:         "windows",
			ProductType:      "french",
			ShortDescription: "Floor-to-ceiling double windows creating seamless indoor-outdoor transitions.",
			Description:      "French windows bring elegance and grandeur to any space. These floor-to-ceiling double windows open outward or inward, creating a seamless connection between indoor and outdoor spaces. Perfect for gardens, balconies, and terraces.",
			HeroImage:        images["french_window"],
			Gallery:          []string{images["french_window"], images["villa_2"], images["doors_1"]},
			Features:         []string{"Full-height design", "Double sash opening", "Flush threshold options", "Integrated blinds available", "Premium hardware"},
			Benefits:         []string{"Abundant natural light", "Elegant aesthetics", "Garden access", "Maximizes views", "Adds value to property"},
			UseCases:         []string{"Living rooms", "Master bedrooms", "Garden rooms", "Balconies"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "70mm - 82mm"},
				{Label: "Max Height", Value: "2700mm"},
				{Label: "Glass Options", Value: "Double/Triple glazed"},
				{Label: "Threshold", Value: "Standard/Low/Flush"},
				{Label: "Security", Value: "Multi-point locking"},
			},
			RelatedProducts: []string{"prod-sliding-door", "prod-casement-window"},
			IsFeatured:      true,
			Order:           6,
			CreatedAt:       catalogEpoch,
		},
	}

	doors := []entity.Product{
		{
			ID:               "prod-sliding-door",
			Slug:             "sliding-doors",
			Name:             "Sliding Doors",
			Category:         "doors",
			ProductType:      "sliding",
			ShortDescription: "Elegant sliding doors for seamless indoor-outdoor living and space optimization.",
			Description:      "Our uPVC sliding doors transform living spaces by creating expansive openings to gardens, patios, and balconies. The precision-engineered roller system ensures effortless operation even for large panels, while the interlock design provides exceptional security and weathersealing.",
			HeroImage:        "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/hlb363b7_Sliding.png",
			Gallery:          []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/hlb363b7_Sliding.png", images["villa_1"], images["interior_1"]},
			Features:         []string{"Heavy-duty rollers", "Multi-point locking", "Low threshold options", "Mosquito mesh tracks", "Anti-lift security"},
			Benefits:         []string{"Space saving", "Panoramic views", "Easy operation", "Wheelchair accessible", "Modern aesthetics"},
			UseCases:         []string{"Patio access", "Balconies", "Pool areas", "Living rooms"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "60mm - 100mm"},
				{Label: "Track Options", Value: "2/3/4 panel"},
				{Label: "Max Panel Weight", Value: "Up to 200kg"},
				{Label: "Glass Thickness", Value: "Up to 28mm"},
				{Label: "Threshold Height", Value: "20mm/15mm/Flush"},
			},
			RelatedProducts: []string{"prod-bifold-door", "prod-lift-slide-door"},
			IsFeatured:      true,
			Order:           1,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-casement-door",
			Slug:             "casement-doors",
			Name:             "Casement Doors",
			Category:         "doors",
			ProductType:      "casement",
			ShortDescription: "Traditional hinged doors with modern performance for entrances and interiors.",
			Description:      "Casement doors offer classic styling with contemporary uPVC performance. Available in single or double configurations, they feature robust multi-point locking, premium hinges, and excellent weathersealing. Perfect for main entrances, French doors, and utility access.",
			HeroImage:        "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/jc3yl4ck_Casement.png",
			Gallery:          []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/jc3yl4ck_Casement.png", images["interior_2"], images["villa_2"]},
			Features:         []string{"Multi-point locking", "Adjustable hinges", "Reinforced frames", "Panic hardware options", "Glazed/Solid panels"},
			Benefits:         []string{"Classic aesthetics", "High security", "Durable construction", "Easy maintenance", "Versatile designs"},
			UseCases:         []string{"Main entrances", "Back doors", "Utility rooms", "Interior doors"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "70mm - 82mm"},
				{Label: "Max Size", Value: "1200mm x 2400mm per leaf"},
				{Label: "Security", Value: "PAS 24 available"},
				{Label: "Hardware", Value: "Hoppe/Yale/GU"},
				{Label: "Fire Rating", Value: "30 min available"},
			},
			RelatedProducts: []string{"prod-sliding-door", "prod-french-window"},
			IsFeatured:      true,
			Order:           2,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-bifold-door",
			Slug:             "bifold-doors",
			Name:             "Bi-fold / Slide & Fold Doors",
			Category:         "doors",
			ProductType:      "bifold",
			ShortDescription: "Folding door systems that open up entire walls for dramatic indoor-outdoor connection.",
			Description:      "Bi-fold doors create the ultimate open-plan living experience. Multiple panels fold and slide to one or both sides, opening up entire walls to connect interior spaces with gardens and terraces. Available in configurations from 2 to 7 panels.",
			HeroImage:        "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/bute2vzt_bifold.png",
			Gallery:          []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/bute2vzt_bifold.png", images["villa_1"], images["doors_1"]},
			Features:         []string{"Multiple configurations", "Slim sightlines", "Flush tracks", "Top-hung options", "Traffic door function"},
			Benefits:         []string{"Maximum opening", "Dramatic transformation", "Flexible configurations", "Premium aesthetics", "Property value boost"},
			UseCases:         []string{"Living to garden", "Dining areas", "Kitchen extensions", "Entertainment spaces"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "70mm - 90mm"},
				{Label: "Configurations", Value: "2-7 panels"},
				{Label: "Max Opening", Value: "Up to 6000mm"},
				{Label: "Sightline", Value: "From 135mm"},
				{Label: "Threshold", Value: "Low/Rebated/Flush"},
			},
			RelatedProducts: []string{"prod-sliding-door", "prod-lift-slide-door"},
			IsFeatured:      true,
			Order:           3,
			CreatedAt:       catalogEpoch,
		},
		{
			ID:               "prod-lift-slide-door",
			Slug:             "lift-slide-doors",
			Name:             "Lift & Slide Doors",
			Category:         "doors",
			ProductType:      "lift_slide",
			ShortDescription: "Premium sliding doors with lift mechanism for ultra-smooth operation of large panels.",
			Description:      "Lift and slide doors represent the pinnacle of sliding door technology. A simple handle turn lifts the door off its seals, allowing even massive panels to glide effortlessly. When closed, the door settles into compression seals for exceptional weather and acoustic performance.",
			HeroImage:        "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/5gv3gt1i_Lift%20and%20slide.png",
			Gallery:          []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/5gv3gt1i_Lift%20and%20slide.png", images["villa_1"], images["commercial_1"]},
			Features:         []string{"Lift mechanism", "Extra-large panels", "Compression seals", "Slim profiles", "Motorization option"},
			Benefits:         []string{"Effortless operation", "Maximum glass area", "Superior insulation", "Architectural statement", "Luxury feel"},
			UseCases:         []string{"Grand living spaces", "Luxury villas", "Premium apartments", "Penthouses"},
			Specs: []entity.ProductSpec{
				{Label: "Frame Depth", Value: "90mm - 120mm"},
				{Label: "Max Panel Size", Value: "3000mm x 3000mm"},
				{Label: "Max Panel Weight", Value: "Up to 400kg"},
				{Label: "U-Value", Value: "As low as 1.1 W/m²K"},
				{Label: "Sound Reduction", Value: "Up to 47 dB"},
			},
			RelatedProducts: []string{"prod-bifold-door", "prod-sliding-door"},
			Order:           4,
			CreatedAt:       catalogEpoch,
		},
	}

	return append(windows, doors...)
}
