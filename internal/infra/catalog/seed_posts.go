package catalog

import "krystal/internal/domain/entity"

func seedBlogPosts() []entity.BlogPost {
	return []entity.BlogPost{
		{
			ID:      "blog-acoustic-comfort",
			Slug:    "guide-to-acoustic-comfort-upvc-windows",
			Title:   "Complete Guide to Acoustic Comfort with uPVC Windows",
			Excerpt: "Discover how uPVC windows can transform your noisy urban home into a peaceful sanctuary.",
			Content: `Living in urban India means battling constant noise—from traffic, construction, and neighborhood activity. The good news? Modern uPVC windows can reduce noise by up to 45 dB, transforming your home into a peaceful retreat.

## Understanding Sound Insulation

Sound reduction in windows depends on three factors:

1. **Glass thickness and type**: Laminated acoustic glass performs best
2. **Air gap in double glazing**: Wider gaps absorb more sound
3. **Frame sealing quality**: Multi-chamber profiles with premium gaskets

## Which Windows Work Best?

For maximum acoustic performance, we recommend:

- **Tilt & Turn Windows**: Multi-point compression sealing
- **Triple Glazing**: Three panes with varying thicknesses
- **Laminated Glass**: PVB interlayer absorbs sound vibrations

## Real Results

Our clients in Gurugram typically experience:
- 35-42 dB noise reduction with standard double glazing
- 40-47 dB reduction with acoustic-spec laminated glass
- Near-silent interiors even on busy roads

## Installation Matters

Even the best windows fail if poorly installed. Ensure:
- Proper frame leveling and shimming
- Complete perimeter sealing
- No gaps between wall and frame

Ready to enjoy peaceful living? Contact Krystal for a noise assessment.`,
			Category:    "acoustic",
			Tags:        []string{"noise reduction", "acoustic glass", "urban living", "sleep quality"},
			HeroImage:   "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/upquus9f_Acoustics.jpeg",
			Author:      "Krystal Team",
			ReadTime:    6,
			IsPublished: true,
			CreatedAt:   catalogEpoch,
		},
		{
			ID:      "blog-energy-efficiency",
			Slug:    "energy-efficient-windows-delhi-ncr",
			Title:   "Energy Efficient Windows for Delhi NCR's Extreme Climate",
			Excerpt: "How the right windows can cut your AC bills by 40% while keeping your home comfortable year-round.",
			Content: `Delhi NCR experiences extreme temperatures—from 45°C summers to near-freezing winters. Your windows play a crucial role in maintaining comfort and controlling energy costs.

## The U-Value Factor

U-value measures heat transfer through a window. Lower is better:
- Single glazed: U-value 5.0+ (very poor)
- Standard double glazed: U-value 2.8-3.0
- High-performance double glazed: U-value 1.4-1.6
- Triple glazed: U-value 0.8-1.2

## Solar Heat Gain

In hot climates, controlling solar heat gain is critical:

- **Low-E glass**: Reflects infrared radiation
- **Tinted glass**: Reduces visible light and heat
- **Reflective coatings**: Maximum heat rejection

## Recommended Configurations

**For South/West facing windows:**
- Double glazed with Low-E on surface 2
- Solar control tint
- Consider external shading

**For North/East facing:**
- Standard double glazing often sufficient
- Maximize natural light

## Cost Savings

Typical savings with energy-efficient uPVC windows:
- 30-40% reduction in AC costs
- Improved thermal comfort
- Reduced carbon footprint
- Government incentives may apply

Invest in quality windows—they pay for themselves within 3-5 years.`,
			Category:    "energy",
			Tags:        []string{"energy saving", "thermal insulation", "AC costs", "low-e glass"},
			HeroImage:   "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/jwhyl7lq_Energy%20Homes.jpeg",
			Author:      "Krystal Team",
			ReadTime:    5,
			IsPublished: true,
			CreatedAt:   catalogEpoch,
		},
		{
			ID:      "blog-maintenance-guide",
			Slug:    "upvc-window-maintenance-guide",
			Title:   "Complete uPVC Window Maintenance Guide",
			Excerpt: "Simple steps to keep your uPVC windows performing perfectly for decades.",
			Content: `uPVC windows are designed for minimal maintenance, but a little care goes a long way in ensuring they perform optimally for 25+ years.

## Monthly Cleaning

**Frames:**
1. Wipe with damp cloth and mild soap
2. Never use abrasive cleaners or solvents
3. Clean drainage slots to prevent water buildup

**Glass:**
1. Use standard glass cleaner
2. Clean both sides for best clarity
3. Check for seal condensation (indicates failure)

## Quarterly Maintenance

**Hardware:**
- Apply light machine oil to hinges and locks
- Check handle operation—should be smooth
- Test multi-point locks engage fully

**Seals and Gaskets:**
- Inspect for cracking or shrinkage
- Clean with silicone spray (not petroleum-based)
- Replace if showing wear

## Annual Inspection

Schedule professional inspection for:
- Frame alignment and adjustment
- Hardware tension and security
- Seal integrity and weatherproofing
- Glass unit condition

## Warning Signs

Contact us if you notice:
- Condensation between glass panes
- Drafts around closed windows
- Difficulty opening or closing
- Visible seal damage

Proper maintenance protects your investment and ensures continued performance.`,
			Category:    "maintenance",
			Tags:        []string{"maintenance", "cleaning", "care guide", "longevity"},
			HeroImage:   "https://customer-assets.emergentagent.com/job_upvc-elegance/artifacts/785jsiwm_Maintenance.jpeg",
			Author:      "Krystal Team",
			ReadTime:    4,
			IsPublished: true,
			CreatedAt:   catalogEpoch,
		},
	}
}
