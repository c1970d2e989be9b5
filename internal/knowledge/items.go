package knowledge

var defaultItems = []Item{
	{
		Keywords: []string{"shivaji", "chhatrapati", "maratha", "maratha empire"},
		Response: "Chhatrapati Shivaji Maharaj (1630-1680) was the founder of the Maratha Empire in western India. He was a great warrior, administrator, and leader who fought against the Mughal Empire. He established a strong naval force, built many forts, and created an efficient administrative system.",
		Category: "Indian History",
	},
	{
		Keywords: []string{"gandhi", "mahatma", "father of nation"},
		Response: "Mahatma Gandhi (1869-1948) was the leader of India's independence movement against British rule. He is known for his philosophy of non-violence (ahimsa) and civil disobedience. His methods inspired movements for civil rights and freedom across the world. He is called the 'Father of the Nation' in India.",
		Category: "Indian History",
	},
	{
		Keywords: []string{"nehru", "jawaharlal", "first prime minister"},
		Response: "Jawaharlal Nehru (1889-1964) was India's first Prime Minister after independence. He was a key leader in the independence movement and is known for his vision of a modern, secular India. His birthday is celebrated as Children's Day in India.",
		Category: "Indian History",
	},
	{
		Keywords: []string{"independence", "freedom struggle", "british rule"},
		Response: "India's independence movement (1857-1947) was a long struggle against British colonial rule. Key events included the First War of Independence (1857), formation of the Indian National Congress (1885), Non-Cooperation Movement (1920), Quit India Movement (1942), and finally independence on August 15, 1947.",
		Category: "Indian History",
	},
	{
		Keywords: []string{"bose", "subhas chandra", "netaji"},
		Response: "Subhas Chandra Bose (1897-1945), popularly known as Netaji, was a prominent leader in India's independence movement. He formed the Indian National Army (INA) to fight against British rule. His famous slogan was 'Give me blood and I will give you freedom.'",
		Category: "Indian History",
	},
	{
		Keywords: []string{"patel", "sardar", "iron man"},
		Response: "Sardar Vallabhbhai Patel (1875-1950) was India's first Deputy Prime Minister and Home Minister. He is known as the 'Iron Man of India' for his role in integrating over 500 princely states into the Indian Union after independence.",
		Category: "Indian History",
	},
	{
		Keywords: []string{"french revolution", "bastille", "napoleon"},
		Response: "The French Revolution (1789-1799) was a period of radical social and political change in France. It began with the storming of the Bastille prison and led to the overthrow of the monarchy. Key events included the Declaration of the Rights of Man, the Reign of Terror, and the rise of Napoleon Bonaparte.",
		Category: "World History",
	},
	{
		Keywords: []string{"world war", "ww1", "ww2"},
		Response: "World War II (1939-1945) was a global conflict involving most nations. It began with Germany's invasion of Poland and ended with the surrender of Germany and Japan. It resulted in the creation of the United Nations and the beginning of the Cold War.",
		Category: "World History",
	},
	{
		Keywords: []string{"cold war", "soviet union"},
		Response: "The Cold War (1947-1991) was a period of geopolitical tension between the United States and the Soviet Union, characterized by political, economic, and military rivalry without direct armed conflict. It ended with the collapse of the Soviet Union.",
		Category: "World History",
	},
	{
		Keywords: []string{"industrial revolution", "industrialization"},
		Response: "The Industrial Revolution (1760-1840) was a period of major industrialization and innovation. It began in Britain and spread worldwide. Key developments included the steam engine, mechanized textile production, and the factory system.",
		Category: "World History",
	},
	{
		Keywords: []string{"cleanest city", "indore"},
		Response: "Indore in Madhya Pradesh is often considered the cleanest city in India, having won the 'Cleanest City' award multiple times in the Swachh Survekshan survey. Other clean cities include Surat, Navi Mumbai, Ambikapur, and Mysuru.",
		Category: "Geography",
	},
	{
		Keywords: []string{"capital", "new delhi"},
		Response: "New Delhi is the capital of India. It serves as the seat of the Indian government and houses important buildings like the Parliament House and Rashtrapati Bhavan.",
		Category: "Geography",
	},
	{
		Keywords: []string{"himalayas", "himalayan", "mount everest"},
		Response: "The Himalayas are the highest mountain range in the world, stretching across India, Nepal, Bhutan, China, and Pakistan. Mount Everest, the world's highest peak at 8,848 meters, is located in the Himalayas.",
		Category: "Geography",
	},
	{
		Keywords: []string{"ganges", "ganga", "holy river"},
		Response: "The Ganges (Ganga) is India's most sacred river, flowing 2,525 km from the Himalayas to the Bay of Bengal. The river supports millions of people and is home to diverse wildlife.",
		Category: "Geography",
	},
	{
		Keywords: []string{"photosynthesis", "chlorophyll"},
		Response: "Photosynthesis is the process by which plants make their own food using sunlight, water, and carbon dioxide. Plants use chlorophyll to capture sunlight and convert it into glucose and oxygen. This process provides oxygen for animals and food for the entire food chain.",
		Category: "Science",
	},
	{
		Keywords: []string{"solar system", "planets"},
		Response: "The Solar System consists of the Sun and the objects that orbit it, including eight planets (Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune), dwarf planets, moons, asteroids, and comets. Earth is the third planet from the Sun.",
		Category: "Science",
	},
	{
		Keywords: []string{"human body", "organs"},
		Response: "The human body is made up of many systems working together: the skeletal, muscular, circulatory, respiratory, digestive, and nervous systems, among others. Each system has specific functions that help us survive.",
		Category: "Science",
	},
	{
		Keywords: []string{"water cycle", "evaporation", "condensation"},
		Response: "The water cycle is the continuous movement of water on, above, and below Earth's surface. It includes evaporation, condensation, precipitation, and collection. This cycle is essential for life on Earth.",
		Category: "Science",
	},
	{
		Keywords: []string{"climate change", "global warming", "greenhouse"},
		Response: "Climate change refers to long-term changes in global weather patterns and temperatures, primarily caused by human activities that release greenhouse gases. Effects include rising sea levels, extreme weather events, and impacts on ecosystems.",
		Category: "Science",
	},
	{
		Keywords: []string{"virat", "kohli", "cricket"},
		Response: "Virat Kohli is one of India's greatest cricketers. Known for his aggressive batting style and consistency, he has broken many records and is considered one of the best batsmen in the world.",
		Category: "Sports",
	},
	{
		Keywords: []string{"sachin", "tendulkar", "master blaster"},
		Response: "Sachin Tendulkar is one of the greatest cricketers of all time. Known as the 'Master Blaster', he played international cricket for 24 years and holds many records including most international runs and centuries.",
		Category: "Sports",
	},
	{
		Keywords: []string{"dhoni", "captain cool"},
		Response: "MS Dhoni is one of India's most successful cricket captains. Known as 'Captain Cool', he led India to victory in the 2007 T20 World Cup, 2011 ODI World Cup, and 2013 Champions Trophy.",
		Category: "Sports",
	},
	{
		Keywords: []string{"ai", "artificial intelligence"},
		Response: "Artificial Intelligence (AI) is a rapidly developing field of computer science. AI technologies like machine learning and automation are transforming industries including healthcare, education, transportation, and entertainment.",
		Category: "Current Affairs",
	},
	{
		Keywords: []string{"democracy", "democratic", "government"},
		Response: "Democracy is a system of government where power comes from the people, either directly or through elected representatives. Key features include free and fair elections, rule of law, and protection of individual rights.",
		Category: "General Knowledge",
	},
	{
		Keywords: []string{"tiger", "national animal"},
		Response: "The Bengal Tiger is India's national animal. Tigers are an endangered species and India has several conservation programs like Project Tiger to protect them.",
		Category: "General Knowledge",
	},
	{
		Keywords: []string{"peacock", "national bird"},
		Response: "The Indian Peacock is India's national bird. Known for its beautiful colorful plumage and distinctive call, the peacock is associated with grace, beauty, and pride in Indian culture.",
		Category: "General Knowledge",
	},
	{
		Keywords: []string{"lotus", "national flower"},
		Response: "The Lotus is India's national flower. It is a sacred flower in Indian culture, symbolizing purity, beauty, and spiritual enlightenment.",
		Category: "General Knowledge",
	},
}
