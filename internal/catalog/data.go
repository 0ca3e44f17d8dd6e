package catalog

import "github.com/Tyagianshu04/krishi-mitra/internal/model"

// Indian states with their LGD codes. Codes are stable but not contiguous;
// gaps correspond to territories merged or not covered by the platform.
var states = []model.State{
	{Code: 1, Name: "Jammu and Kashmir"},
	{Code: 2, Name: "Himachal Pradesh"},
	{Code: 3, Name: "Punjab"},
	{Code: 4, Name: "Chandigarh"},
	{Code: 5, Name: "Uttarakhand"},
	{Code: 6, Name: "Haryana"},
	{Code: 7, Name: "Delhi"},
	{Code: 8, Name: "Rajasthan"},
	{Code: 9, Name: "Uttar Pradesh"},
	{Code: 10, Name: "Bihar"},
	{Code: 11, Name: "Sikkim"},
	{Code: 12, Name: "Arunachal Pradesh"},
	{Code: 13, Name: "Nagaland"},
	{Code: 14, Name: "Manipur"},
	{Code: 15, Name: "Mizoram"},
	{Code: 16, Name: "Tripura"},
	{Code: 17, Name: "Meghalaya"},
	{Code: 18, Name: "Assam"},
	{Code: 19, Name: "West Bengal"},
	{Code: 20, Name: "Jharkhand"},
	{Code: 21, Name: "Odisha"},
	{Code: 22, Name: "Chhattisgarh"},
	{Code: 23, Name: "Madhya Pradesh"},
	{Code: 24, Name: "Gujarat"},
	{Code: 27, Name: "Maharashtra"},
	{Code: 28, Name: "Andhra Pradesh"},
	{Code: 29, Name: "Karnataka"},
	{Code: 30, Name: "Goa"},
	{Code: 32, Name: "Kerala"},
	{Code: 33, Name: "Tamil Nadu"},
	{Code: 34, Name: "Puducherry"},
	{Code: 36, Name: "Telangana"},
	{Code: 37, Name: "Ladakh"},
}

// Major districts for each state, with approximate centroids.
var districts = []model.District{
	// Jammu and Kashmir (1)
	{Code: 11, Name: "Srinagar", StateCode: 1, Lat: 34.0837, Lon: 74.7973},
	{Code: 12, Name: "Jammu", StateCode: 1, Lat: 32.7266, Lon: 74.8570},
	{Code: 13, Name: "Anantnag", StateCode: 1, Lat: 33.7310, Lon: 75.1484},
	{Code: 14, Name: "Baramulla", StateCode: 1, Lat: 34.2093, Lon: 74.3429},

	// Himachal Pradesh (2)
	{Code: 21, Name: "Shimla", StateCode: 2, Lat: 31.1048, Lon: 77.1734},
	{Code: 22, Name: "Kangra", StateCode: 2, Lat: 32.0998, Lon: 76.2689},
	{Code: 23, Name: "Mandi", StateCode: 2, Lat: 31.7084, Lon: 76.9318},
	{Code: 24, Name: "Solan", StateCode: 2, Lat: 30.9045, Lon: 77.0967},

	// Punjab (3)
	{Code: 41, Name: "Amritsar", StateCode: 3, Lat: 31.6340, Lon: 74.8723},
	{Code: 42, Name: "Ludhiana", StateCode: 3, Lat: 30.9010, Lon: 75.8573},
	{Code: 43, Name: "Jalandhar", StateCode: 3, Lat: 31.3260, Lon: 75.5762},
	{Code: 44, Name: "Patiala", StateCode: 3, Lat: 30.3398, Lon: 76.3869},
	{Code: 45, Name: "Bathinda", StateCode: 3, Lat: 30.2110, Lon: 74.9455},

	// Chandigarh (4)
	{Code: 61, Name: "Chandigarh", StateCode: 4, Lat: 30.7333, Lon: 76.7794},

	// Uttarakhand (5)
	{Code: 71, Name: "Dehradun", StateCode: 5, Lat: 30.3165, Lon: 78.0322},
	{Code: 72, Name: "Haridwar", StateCode: 5, Lat: 29.9457, Lon: 78.1642},
	{Code: 73, Name: "Nainital", StateCode: 5, Lat: 29.3803, Lon: 79.4636},
	{Code: 74, Name: "Udham Singh Nagar", StateCode: 5, Lat: 29.0167, Lon: 79.4167},

	// Haryana (6)
	{Code: 85, Name: "Faridabad", StateCode: 6, Lat: 28.4089, Lon: 77.3178},
	{Code: 86, Name: "Gurugram", StateCode: 6, Lat: 28.4595, Lon: 77.0266},
	{Code: 87, Name: "Hisar", StateCode: 6, Lat: 29.1492, Lon: 75.7217},
	{Code: 88, Name: "Rohtak", StateCode: 6, Lat: 28.8955, Lon: 76.6066},
	{Code: 89, Name: "Karnal", StateCode: 6, Lat: 29.6857, Lon: 76.9905},
	{Code: 90, Name: "Panipat", StateCode: 6, Lat: 29.3909, Lon: 76.9635},

	// Delhi (7)
	{Code: 101, Name: "Central Delhi", StateCode: 7, Lat: 28.6517, Lon: 77.2219},
	{Code: 102, Name: "South Delhi", StateCode: 7, Lat: 28.5245, Lon: 77.2066},
	{Code: 103, Name: "North Delhi", StateCode: 7, Lat: 28.7041, Lon: 77.1025},

	// Rajasthan (8)
	{Code: 111, Name: "Jaipur", StateCode: 8, Lat: 26.9124, Lon: 75.7873},
	{Code: 112, Name: "Jodhpur", StateCode: 8, Lat: 26.2389, Lon: 73.0243},
	{Code: 113, Name: "Udaipur", StateCode: 8, Lat: 24.5854, Lon: 73.7125},
	{Code: 114, Name: "Kota", StateCode: 8, Lat: 25.2138, Lon: 75.8648},
	{Code: 115, Name: "Ajmer", StateCode: 8, Lat: 26.4499, Lon: 74.6399},

	// Uttar Pradesh (9)
	{Code: 151, Name: "Lucknow", StateCode: 9, Lat: 26.8467, Lon: 80.9462},
	{Code: 152, Name: "Kanpur Nagar", StateCode: 9, Lat: 26.4499, Lon: 80.3319},
	{Code: 153, Name: "Agra", StateCode: 9, Lat: 27.1767, Lon: 78.0081},
	{Code: 154, Name: "Varanasi", StateCode: 9, Lat: 25.3176, Lon: 82.9739},
	{Code: 155, Name: "Prayagraj", StateCode: 9, Lat: 25.4358, Lon: 81.8463},
	{Code: 156, Name: "Ghaziabad", StateCode: 9, Lat: 28.6692, Lon: 77.4538},
	{Code: 157, Name: "Meerut", StateCode: 9, Lat: 28.9845, Lon: 77.7064},
	{Code: 158, Name: "Bareilly", StateCode: 9, Lat: 28.3670, Lon: 79.4304},
	{Code: 159, Name: "Aligarh", StateCode: 9, Lat: 27.8974, Lon: 78.0880},
	{Code: 160, Name: "Moradabad", StateCode: 9, Lat: 28.8389, Lon: 78.7768},

	// Bihar (10)
	{Code: 201, Name: "Patna", StateCode: 10, Lat: 25.5941, Lon: 85.1376},
	{Code: 202, Name: "Gaya", StateCode: 10, Lat: 24.7955, Lon: 85.0002},
	{Code: 203, Name: "Bhagalpur", StateCode: 10, Lat: 25.2425, Lon: 86.9842},
	{Code: 204, Name: "Muzaffarpur", StateCode: 10, Lat: 26.1225, Lon: 85.3906},

	// Sikkim (11)
	{Code: 221, Name: "Gangtok", StateCode: 11, Lat: 27.3389, Lon: 88.6065},
	{Code: 222, Name: "Namchi", StateCode: 11, Lat: 27.1652, Lon: 88.3639},

	// Arunachal Pradesh (12)
	{Code: 241, Name: "Itanagar", StateCode: 12, Lat: 27.0844, Lon: 93.6053},
	{Code: 242, Name: "Tawang", StateCode: 12, Lat: 27.5860, Lon: 91.8714},

	// Nagaland (13)
	{Code: 261, Name: "Kohima", StateCode: 13, Lat: 25.6751, Lon: 94.1086},
	{Code: 262, Name: "Dimapur", StateCode: 13, Lat: 25.9067, Lon: 93.7272},

	// Manipur (14)
	{Code: 281, Name: "Imphal West", StateCode: 14, Lat: 24.8170, Lon: 93.9368},
	{Code: 282, Name: "Imphal East", StateCode: 14, Lat: 24.7644, Lon: 93.9632},

	// Mizoram (15)
	{Code: 301, Name: "Aizawl", StateCode: 15, Lat: 23.7271, Lon: 92.7176},
	{Code: 302, Name: "Lunglei", StateCode: 15, Lat: 22.8853, Lon: 92.7378},

	// Tripura (16)
	{Code: 321, Name: "Agartala", StateCode: 16, Lat: 23.8315, Lon: 91.2868},
	{Code: 322, Name: "Udaipur", StateCode: 16, Lat: 23.5337, Lon: 91.4827},

	// Meghalaya (17)
	{Code: 341, Name: "Shillong", StateCode: 17, Lat: 25.5788, Lon: 91.8933},
	{Code: 342, Name: "Tura", StateCode: 17, Lat: 25.5198, Lon: 90.2034},

	// Assam (18)
	{Code: 361, Name: "Guwahati", StateCode: 18, Lat: 26.1445, Lon: 91.7362},
	{Code: 362, Name: "Dibrugarh", StateCode: 18, Lat: 27.4728, Lon: 94.9120},
	{Code: 363, Name: "Jorhat", StateCode: 18, Lat: 26.7509, Lon: 94.2037},
	{Code: 364, Name: "Silchar", StateCode: 18, Lat: 24.8333, Lon: 92.7789},

	// West Bengal (19)
	{Code: 381, Name: "Kolkata", StateCode: 19, Lat: 22.5726, Lon: 88.3639},
	{Code: 382, Name: "Darjeeling", StateCode: 19, Lat: 27.0410, Lon: 88.2663},
	{Code: 383, Name: "Howrah", StateCode: 19, Lat: 22.5958, Lon: 88.2636},
	{Code: 384, Name: "Siliguri", StateCode: 19, Lat: 26.7271, Lon: 88.3953},

	// Jharkhand (20)
	{Code: 401, Name: "Ranchi", StateCode: 20, Lat: 23.3441, Lon: 85.3096},
	{Code: 402, Name: "Jamshedpur", StateCode: 20, Lat: 22.8046, Lon: 86.2029},
	{Code: 403, Name: "Dhanbad", StateCode: 20, Lat: 23.7957, Lon: 86.4304},
	{Code: 404, Name: "Bokaro", StateCode: 20, Lat: 23.6693, Lon: 86.1511},

	// Odisha (21)
	{Code: 421, Name: "Bhubaneswar", StateCode: 21, Lat: 20.2961, Lon: 85.8245},
	{Code: 422, Name: "Cuttack", StateCode: 21, Lat: 20.4625, Lon: 85.8830},
	{Code: 423, Name: "Puri", StateCode: 21, Lat: 19.8135, Lon: 85.8312},
	{Code: 424, Name: "Sambalpur", StateCode: 21, Lat: 21.4669, Lon: 83.9812},

	// Chhattisgarh (22)
	{Code: 441, Name: "Raipur", StateCode: 22, Lat: 21.2514, Lon: 81.6296},
	{Code: 442, Name: "Bilaspur", StateCode: 22, Lat: 22.0797, Lon: 82.1409},
	{Code: 443, Name: "Durg", StateCode: 22, Lat: 21.1905, Lon: 81.2849},
	{Code: 444, Name: "Korba", StateCode: 22, Lat: 22.3595, Lon: 82.7501},

	// Madhya Pradesh (23)
	{Code: 461, Name: "Bhopal", StateCode: 23, Lat: 23.2599, Lon: 77.4126},
	{Code: 462, Name: "Indore", StateCode: 23, Lat: 22.7196, Lon: 75.8577},
	{Code: 463, Name: "Jabalpur", StateCode: 23, Lat: 23.1815, Lon: 79.9864},
	{Code: 464, Name: "Gwalior", StateCode: 23, Lat: 26.2183, Lon: 78.1828},
	{Code: 465, Name: "Ujjain", StateCode: 23, Lat: 23.1765, Lon: 75.7885},

	// Gujarat (24)
	{Code: 481, Name: "Ahmedabad", StateCode: 24, Lat: 23.0225, Lon: 72.5714},
	{Code: 482, Name: "Surat", StateCode: 24, Lat: 21.1702, Lon: 72.8311},
	{Code: 483, Name: "Vadodara", StateCode: 24, Lat: 22.3072, Lon: 73.1812},
	{Code: 484, Name: "Rajkot", StateCode: 24, Lat: 22.3039, Lon: 70.8022},
	{Code: 485, Name: "Bhavnagar", StateCode: 24, Lat: 21.7645, Lon: 72.1519},
	{Code: 486, Name: "Jamnagar", StateCode: 24, Lat: 22.4707, Lon: 70.0577},

	// Maharashtra (27)
	{Code: 501, Name: "Mumbai", StateCode: 27, Lat: 19.0760, Lon: 72.8777},
	{Code: 502, Name: "Pune", StateCode: 27, Lat: 18.5204, Lon: 73.8567},
	{Code: 503, Name: "Nagpur", StateCode: 27, Lat: 21.1458, Lon: 79.0882},
	{Code: 504, Name: "Nashik", StateCode: 27, Lat: 19.9975, Lon: 73.7898},
	{Code: 505, Name: "Aurangabad", StateCode: 27, Lat: 19.8762, Lon: 75.3433},
	{Code: 506, Name: "Solapur", StateCode: 27, Lat: 17.6599, Lon: 75.9064},

	// Andhra Pradesh (28)
	{Code: 521, Name: "Visakhapatnam", StateCode: 28, Lat: 17.6868, Lon: 83.2185},
	{Code: 522, Name: "Vijayawada", StateCode: 28, Lat: 16.5062, Lon: 80.6480},
	{Code: 523, Name: "Guntur", StateCode: 28, Lat: 16.3067, Lon: 80.4365},
	{Code: 524, Name: "Nellore", StateCode: 28, Lat: 14.4426, Lon: 79.9865},

	// Karnataka (29)
	{Code: 541, Name: "Bengaluru", StateCode: 29, Lat: 12.9716, Lon: 77.5946},
	{Code: 542, Name: "Mysuru", StateCode: 29, Lat: 12.2958, Lon: 76.6394},
	{Code: 543, Name: "Mangaluru", StateCode: 29, Lat: 12.9141, Lon: 74.8560},
	{Code: 544, Name: "Hubballi", StateCode: 29, Lat: 15.3647, Lon: 75.1240},
	{Code: 545, Name: "Belagavi", StateCode: 29, Lat: 15.8497, Lon: 74.4977},

	// Goa (30)
	{Code: 561, Name: "North Goa", StateCode: 30, Lat: 15.4909, Lon: 73.8278},
	{Code: 562, Name: "South Goa", StateCode: 30, Lat: 15.2993, Lon: 74.1240},

	// Kerala (32)
	{Code: 581, Name: "Thiruvananthapuram", StateCode: 32, Lat: 8.5241, Lon: 76.9366},
	{Code: 582, Name: "Kochi", StateCode: 32, Lat: 9.9312, Lon: 76.2673},
	{Code: 583, Name: "Kozhikode", StateCode: 32, Lat: 11.2588, Lon: 75.7804},
	{Code: 584, Name: "Thrissur", StateCode: 32, Lat: 10.5276, Lon: 76.2144},
	{Code: 585, Name: "Kannur", StateCode: 32, Lat: 11.8745, Lon: 75.3704},

	// Tamil Nadu (33)
	{Code: 601, Name: "Chennai", StateCode: 33, Lat: 13.0827, Lon: 80.2707},
	{Code: 602, Name: "Coimbatore", StateCode: 33, Lat: 11.0168, Lon: 76.9558},
	{Code: 603, Name: "Madurai", StateCode: 33, Lat: 9.9252, Lon: 78.1198},
	{Code: 604, Name: "Tiruchirappalli", StateCode: 33, Lat: 10.7905, Lon: 78.7047},
	{Code: 605, Name: "Salem", StateCode: 33, Lat: 11.6643, Lon: 78.1460},

	// Puducherry (34)
	{Code: 621, Name: "Puducherry", StateCode: 34, Lat: 11.9416, Lon: 79.8083},
	{Code: 622, Name: "Karaikal", StateCode: 34, Lat: 10.9254, Lon: 79.8380},

	// Telangana (36)
	{Code: 641, Name: "Hyderabad", StateCode: 36, Lat: 17.3850, Lon: 78.4867},
	{Code: 642, Name: "Warangal", StateCode: 36, Lat: 17.9784, Lon: 79.6007},
	{Code: 643, Name: "Nizamabad", StateCode: 36, Lat: 18.6725, Lon: 78.0941},
	{Code: 644, Name: "Khammam", StateCode: 36, Lat: 17.2473, Lon: 80.1514},

	// Ladakh (37)
	{Code: 661, Name: "Leh", StateCode: 37, Lat: 34.1526, Lon: 77.5771},
	{Code: 662, Name: "Kargil", StateCode: 37, Lat: 34.5539, Lon: 76.1315},
}
