package catalog

import "krystal/internal/domain/entity"

func seedFAQs() []entity.FAQ {
	return []entity.FAQ{
		{ID: "faq-1", Question: "What is uPVC and why is it better than aluminium?", Answer: "uPVC (unplasticized Polyvinyl Chloride) is a rigid, durable plastic that doesn't conduct heat or cold like aluminium. This means uPVC windows provide 3x better thermal insulation, reduce condensation, and offer superior acoustic performance. They're also maintenance-free, never need painting, and won't corrode.", Category: "general", Order: 1, IsFeatured: true},
		{ID: "faq-2", Question: "How long do uPVC windows last?", Answer: "Quality uPVC windows from reputable manufacturers like Krystal last 25-30 years with proper care. The frames don't rot, rust, or deteriorate from UV exposure. Hardware may need servicing or replacement after 10-15 years depending on usage.", Category: "general", Order: 2, IsFeatured: true},
		{ID: "faq-3", Question: "What is the cost of uPVC windows per square foot?", Answer: "uPVC window prices in Delhi NCR typically range from ₹450-850 per square foot depending on the profile system, glass type, and hardware selected. Premium European profiles with triple glazing and German hardware will be at the higher end, while standard double-glazed units are more economical.", Category: "general", Order: 3, IsFeatured: true},
		{ID: "faq-4", Question: "Do you provide installation services?", Answer: "Yes, Krystal provides complete turnkey solutions including precise site measurement, custom fabrication, professional installation, and after-sales service. Our trained installation teams ensure perfect fitting, proper sealing, and optimal performance of every window and door.", Category: "installation", Order: 4},
		{ID: "faq-5", Question: "What warranty do you offer?", Answer: "We provide comprehensive warranty coverage: 10 years on uPVC profiles against discoloration and warping, 5 years on hardware, and 5 years on sealed glass units. Installation workmanship is guaranteed for 2 years. Extended warranty options are available.", Category: "general", Order: 5, IsFeatured: true},
		{ID: "faq-6", Question: "Can uPVC windows be customized in different colors?", Answer: "Absolutely! While white is standard, we offer 50+ laminate finishes including wood grains (oak, walnut, mahogany), solid colors (grey, black, cream), and metallic options. Laminate finishes are applied during manufacturing and are highly durable.", Category: "windows", Order: 6},
		{ID: "faq-7", Question: "How much noise can uPVC windows reduce?", Answer: "Standard double-glazed uPVC windows reduce noise by 30-35 dB. With acoustic laminated glass and proper sealing, noise reduction can reach 42-47 dB—enough to make a busy road sound like a quiet library. We recommend site assessment for specific recommendations.", Category: "windows", Order: 7, IsFeatured: true},
		{ID: "faq-8", Question: "Are uPVC windows safe and secure?", Answer: "Yes, uPVC windows with multi-point locking systems exceed standard security requirements. The robust frame construction, reinforced with galvanized steel where needed, resists forced entry. We offer upgraded security hardware and PAS 24 certified options for enhanced protection.", Category: "windows", Order: 8},
		{ID: "faq-9", Question: "How do I clean and maintain uPVC windows?", Answer: "uPVC is virtually maintenance-free. Simply wipe frames with a damp cloth and mild soap. Avoid abrasive cleaners. Lubricate hinges and locks annually with light machine oil. Clean drainage holes to prevent water buildup. That's it—no painting or special treatments needed.", Category: "maintenance", Order: 9},
		{ID: "faq-10", Question: "What areas do you service?", Answer: "We serve all of Delhi NCR including Gurugram, Delhi, Noida, Greater Noida, Faridabad, and Ghaziabad. Our manufacturing facility in Gurugram enables quick delivery across the region. Site visits and installations are available throughout our service area.", Category: "general", Order: 10},
	}
}

func seedTestimonials() []entity.Testimonial {
	return []entity.Testimonial{
		{ID: "test-1", Name: "Rajesh Sharma", Role: "homeowner", Location: "DLF Phase 5, Gurugram", Content: "Krystal transformed our home. The noise reduction is remarkable—we forgot we live near a busy road. The quality and finish are outstanding. Highly recommend their casement windows.", Rating: 5, IsFeatured: true},
		{ID: "test-2", Name: "Ar. Priya Malhotra", Role: "architect", Company: ptr("Studio Priya"), Location: "Golf Course Road, Gurugram", Content: "As an architect, I'm particular about quality and precision. Krystal delivers on both. Their lift & slide doors are exceptional—smooth operation, slim profiles, perfect installation.", Rating: 5, IsFeatured: true},
		{ID: "test-3", Name: "Vikram Kapoor", Role: "builder", Company: ptr("Kapoor Constructions"), Location: "Sohna Road, Gurugram", Content: "We've partnered with Krystal for three projects now. Consistent quality, on-time delivery, and excellent after-sales support. Their team understands commercial project requirements.", Rating: 5, IsFeatured: true},
		{ID: "test-4", Name: "Meera Gupta", Role: "homeowner", Location: "Sector 57, Gurugram", Content: "Our AC bills dropped by almost 40% after installing Krystal's double-glazed windows. The summer heat stays out, and winter warmth stays in. Best investment we've made.", Rating: 5, IsFeatured: true},
		{ID: "test-5", Name: "Dr. Sanjay Mehta", Role: "homeowner", Location: "DLF Phase 2, Gurugram", Content: "Excellent product and professional service. The tilt & turn windows are perfect for our bedroom—secure ventilation without opening fully. Very happy with our choice.", Rating: 5},
	}
}

func seedCities() []entity.City {
	return []entity.City{
		{ID: "city-gurugram", Name: "Gurugram", Slug: "gurugram", State: "Haryana", Description: "Our home base—we know Gurugram's architectural landscape intimately. From DLF phases to Golf Course Road, Sohna Road to New Gurugram, we've transformed thousands of homes with premium uPVC solutions.", IsActive: true},
		{ID: "city-delhi", Name: "Delhi", Slug: "delhi", State: "Delhi", Description: "Serving all of Delhi from South Delhi's elegant homes to North Delhi's vibrant neighborhoods. Our uPVC windows provide the noise reduction and thermal comfort Delhi homes need.", IsActive: true},
		{ID: "city-noida", Name: "Noida", Slug: "noida", State: "Uttar Pradesh", Description: "From Noida's high-rise apartments to sector bungalows, we provide tailored uPVC solutions. Our sliding windows and doors are particularly popular for balcony applications.", IsActive: true},
		{ID: "city-faridabad", Name: "Faridabad", Slug: "faridabad", State: "Haryana", Description: "Quality uPVC windows and doors for Faridabad homes. We understand the local climate and architectural preferences, delivering solutions that perform year-round.", IsActive: true},
		{ID: "city-ghaziabad", Name: "Ghaziabad", Slug: "ghaziabad", State: "Uttar Pradesh", Description: "Serving Ghaziabad with premium uPVC products. Our acoustic solutions are especially valued given the area's urban density and noise challenges.", IsActive: true},
	}
}
