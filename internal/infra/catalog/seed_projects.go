package catalog

import "krystal/internal/domain/entity"

func seedProjects() []entity.Project {
	return []entity.Project{
		{
			ID:                "proj-dlf-phase5",
			Slug:              "dlf-phase-5-luxury-villa",
			Title:             "DLF Phase 5 Luxury Villa",
			Location:          "DLF Phase 5, Gurugram",
			City:              "Gurugram",
			ProjectType:       "villa",
			ProductTypes:      []string{"casement", "sliding", "french"},
			HeroImage:         "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/kfc4qvlx_freepik__create-a-image-of-a-premium-luxury-indian-1st-floo__15016.jpeg",
			Gallery:           []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/kfc4qvlx_freepik__create-a-image-of-a-premium-luxury-indian-1st-floo__15016.jpeg", images["interior_1"], images["doors_1"]},
			Challenge:         "The homeowners sought to reduce traffic noise from the adjacent main road while maintaining abundant natural light and unobstructed garden views.",
			Solution:          "We installed triple-glazed casement windows throughout the living areas, French windows connecting to the landscaped garden, and premium sliding doors for the master bedroom balcony. All units featured our acoustic-grade sealing system.",
			Outcome:           "Noise levels reduced by 85%. The homeowners reported significant improvement in sleep quality and overall comfort. Energy bills decreased by 30% due to superior thermal insulation.",
			Testimonial:       ptr("Krystal transformed our home. The noise reduction is remarkable—we forgot we live near a busy road. The quality and finish are outstanding."),
			TestimonialAuthor: ptr("Mr. Rajesh Sharma, Homeowner"),
			IsFeatured:        true,
			CreatedAt:         catalogEpoch,
		},
		{
			ID:                "proj-golf-course-apartment",
			Slug:              "golf-course-road-penthouse",
			Title:             "Golf Course Road Penthouse",
			Location:          "Golf Course Road, Gurugram",
			City:              "Gurugram",
			ProjectType:       "residential",
			ProductTypes:      []string{"sliding", "tilt_turn", "fixed"},
			HeroImage:         "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/o6xu4094_Pent%20House.jpeg",
			Gallery:           []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/o6xu4094_Pent%20House.jpeg", images["glass_1"], images["interior_2"]},
			Challenge:         "A 4,500 sq ft penthouse requiring floor-to-ceiling glazing that could withstand high-rise wind loads while providing thermal comfort and dust protection.",
			Solution:          "Custom-engineered lift & slide doors for the terrace, tilt & turn windows for controlled ventilation in bedrooms, and structural fixed glazing for the living room's panoramic city views.",
			Outcome:           "Achieved U-value of 1.3 W/m²K across all glazing. Zero dust ingress reported. Annual air conditioning costs reduced by 40%.",
			Testimonial:       ptr("The engineering precision and attention to detail exceeded our expectations. Krystal's team handled the complex installation flawlessly."),
			TestimonialAuthor: ptr("Ar. Priya Malhotra, Interior Designer"),
			IsFeatured:        true,
			CreatedAt:         catalogEpoch,
		},
		{
			ID:           "proj-sohna-commercial",
			Slug:         "sohna-road-office-complex",
			Title:        "Sohna Road Office Complex",
			Location:     "Sohna Road, Gurugram",
			City:         "Gurugram",
			ProjectType:  "commercial",
			ProductTypes: []string{"fixed", "casement", "sliding"},
			HeroImage:    "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/45zdqx3l_Office.jpeg",
			Gallery:      []string{"https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/45zdqx3l_Office.jpeg", images["commercial_1"]},
			Challenge:    "A 15-floor office building requiring energy-efficient facade glazing that meets green building standards and provides consistent thermal comfort across all floors.",
			Solution:     "Full facade solution with high-performance fixed glazing, strategically placed casement windows for natural ventilation in common areas, and automated sliding doors at entrance points.",
			Outcome:      "Building achieved IGBC Gold certification. 45% reduction in HVAC energy consumption compared to similar buildings with conventional glazing.",
			IsFeatured:   true,
			CreatedAt:    catalogEpoch,
		},
	}
}
