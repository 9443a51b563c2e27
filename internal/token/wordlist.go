// wordlist.go - fixed 2048-word mnemonic list (spec.md C4)
// Copyright (C) 2024  The ash developers.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package token

// wordlist is a fixed, deterministic 2048-entry word list used to
// render 11-bit mnemonic chunks as human-readable words, per
// spec.md §4.4. spec.md names no specific external list (e.g.
// BIP-39); any fixed list both devices share satisfies the
// requirement, so ash ships this one (see DESIGN.md's Open Question
// log). Word i is indexed by the i-th 11-bit chunk of
// HMAC("ash/verify/v1", pad).
var wordlist = [2048]string{
	"taba", "yada", "peba", "bizo", "zoga", "habu", "vedu", "taza",
	"wuci", "xamo", "pike", "tubu", "dane", "voha", "duve", "duje",
	"bifu", "gita", "sice", "leme", "tayo", "ponu", "toco", "zetu",
	"tila", "hosa", "wavo", "lepa", "hule", "noda", "reci", "cewa",
	"nita", "yido", "jare", "tuki", "juse", "yema", "pugo", "xone",
	"gaze", "gudi", "haca", "geco", "rijo", "lumo", "nugu", "dilo",
	"rulu", "fole", "mura", "poko", "homa", "dori", "soho", "vemu",
	"pupe", "huyo", "vata", "biva", "guni", "miyi", "yiye", "widu",
	"zenu", "niti", "duyu", "xaki", "pebo", "caje", "nupo", "wami",
	"vuki", "wabu", "nuke", "vogu", "zude", "xehu", "wone", "xuxu",
	"zoci", "disa", "zudi", "kuji", "woyo", "cata", "mone", "vebi",
	"yise", "daje", "zuxe", "wela", "zopu", "piro", "pema", "nula",
	"xuce", "xuyi", "xeni", "piho", "haxo", "keti", "hiyo", "wozu",
	"vowo", "pufu", "ruga", "vofu", "xele", "diri", "wiru", "juvo",
	"nowa", "xoda", "jezi", "hole", "lahi", "zaca", "loni", "musu",
	"hora", "muzi", "jutu", "towi", "wiso", "luvi", "kihe", "sece",
	"yupu", "jota", "dero", "remu", "nuwo", "dibu", "hego", "sewe",
	"mavu", "nugi", "soli", "hate", "tedi", "gule", "reju", "weji",
	"zobu", "peku", "bapo", "kaso", "vonu", "weyu", "yomo", "yabi",
	"yatu", "kose", "cora", "sehu", "dihe", "dura", "giwa", "puci",
	"waco", "vame", "kuvu", "ciko", "tele", "siwa", "mize", "hamu",
	"vase", "sizi", "fayo", "yiwu", "cotu", "hofu", "wiyu", "xewa",
	"ranu", "ganu", "vida", "zoza", "payu", "jatu", "huci", "wuri",
	"yucu", "nune", "duka", "mada", "bixu", "pusu", "bota", "japi",
	"popa", "bego", "pefa", "luha", "zixu", "vudu", "sibo", "nexe",
	"zuko", "hove", "ruvu", "riyi", "lepe", "lume", "megu", "yoci",
	"sici", "buce", "zijo", "rinu", "rolo", "wazu", "niji", "fozi",
	"pomo", "silu", "hoyi", "juha", "rutu", "geri", "pozi", "kixo",
	"nahu", "lero", "lita", "huto", "came", "resu", "yaje", "mime",
	"yuso", "ceyu", "vofe", "zafa", "gefo", "paxa", "degi", "rizo",
	"mite", "dice", "mowi", "womi", "henu", "banu", "fodi", "sufi",
	"golo", "cobo", "bewu", "xaya", "wipo", "caba", "zuku", "folu",
	"xeli", "dazi", "niso", "cosu", "neje", "lasu", "bobi", "saya",
	"zuso", "yaka", "laju", "roxa", "jefi", "fuda", "foce", "roji",
	"yica", "suso", "koyo", "wiwu", "numo", "fulo", "pona", "gefi",
	"situ", "yuli", "cono", "waxa", "kaja", "fori", "nale", "zugi",
	"piwo", "cuta", "saja", "melu", "suhi", "vawa", "jita", "tufo",
	"vomi", "doka", "wuwi", "wike", "tuxa", "rade", "curi", "kohe",
	"jeka", "bilu", "jecu", "ziri", "tehe", "xove", "nego", "tipe",
	"kefi", "wivi", "juxo", "diro", "reji", "legu", "golu", "tise",
	"roda", "niza", "viki", "haza", "fiya", "pigo", "tave", "tugi",
	"wube", "weza", "gipe", "bece", "jami", "ridi", "lire", "dake",
	"xaze", "fotu", "punu", "ruco", "mizu", "haxi", "zodi", "wotu",
	"xefu", "jotu", "lifi", "sifi", "tima", "tazi", "zupo", "hezu",
	"copi", "ciyi", "teta", "cofu", "naji", "puse", "cumu", "liwo",
	"tike", "salo", "mumu", "yiwi", "xiwo", "hiyu", "haga", "dinu",
	"wuba", "muvu", "nose", "ceso", "xolu", "nufo", "hamo", "buzo",
	"diho", "leco", "raci", "nami", "karu", "wugu", "sesu", "vico",
	"tuha", "rate", "diko", "yesi", "buje", "jiwi", "piku", "zuwe",
	"layi", "fiye", "faci", "keba", "soni", "gogo", "lixi", "vifo",
	"lako", "wola", "mulu", "kori", "muwa", "yuhu", "cafi", "xaru",
	"pivi", "juyo", "xavi", "xuwa", "hone", "duda", "zuxo", "pogu",
	"kege", "voke", "losa", "wepu", "nixe", "poci", "wudu", "bugo",
	"jire", "zatu", "kofo", "fiyu", "gagu", "wiri", "wera", "dado",
	"hime", "wuku", "nafu", "lono", "moci", "mige", "caya", "bipo",
	"hipi", "facu", "timo", "yuye", "zage", "wuwe", "fise", "xoto",
	"cafa", "nulu", "lodu", "male", "pubi", "dabo", "wuma", "cavi",
	"jene", "cava", "xefi", "mema", "bode", "java", "vosi", "juhe",
	"nude", "mivo", "wimo", "demu", "yiyo", "jesu", "pegi", "lewe",
	"mudu", "yoba", "kobu", "nigo", "xufi", "yine", "jepo", "nire",
	"coyu", "zafo", "gawo", "welo", "luma", "jipa", "xuro", "cetu",
	"baju", "resa", "dafi", "xaju", "tuzo", "hefi", "kiga", "xige",
	"rube", "febo", "yexo", "yimu", "yuki", "nuba", "sisi", "zalo",
	"hute", "wini", "metu", "cavo", "puru", "viho", "kowe", "bepo",
	"doxe", "rude", "joha", "nato", "meve", "dewi", "kuyo", "gifo",
	"jixi", "hucu", "cafe", "pepe", "xidu", "xenu", "guma", "tuzu",
	"nibi", "salu", "mugu", "veba", "yale", "sixa", "jaga", "sema",
	"wese", "daga", "roso", "koxo", "yege", "lifa", "caye", "mija",
	"waka", "ciza", "huna", "ruhe", "neza", "foji", "cahu", "govo",
	"cewi", "pifo", "mudo", "kohi", "puvo", "zefo", "piwi", "sari",
	"cihi", "xule", "dayo", "kata", "tuca", "tuyo", "wuka", "heva",
	"mule", "rixi", "vutu", "tabo", "xane", "fuhi", "sone", "fuxo",
	"yuri", "noya", "kiva", "nece", "guze", "toyu", "tafa", "gihu",
	"gavi", "sefo", "yuja", "jamo", "hipe", "cole", "jiyo", "pelu",
	"xahe", "yitu", "buyi", "kuwo", "zize", "zulo", "hoje", "hidu",
	"sahi", "cuto", "judu", "jaxo", "zuga", "toyo", "faru", "nuzu",
	"tipo", "boca", "yifa", "ruru", "sipo", "wuyu", "wuso", "reta",
	"weyi", "homu", "dodi", "guzu", "koma", "yixu", "xiko", "zura",
	"kafu", "geya", "zoru", "nalu", "lili", "nito", "muse", "xoxi",
	"yuvu", "wogo", "joju", "juna", "biyo", "luzi", "xito", "kahe",
	"vega", "rulo", "laxi", "kabe", "jago", "sepu", "yuyi", "soya",
	"zica", "nufe", "yina", "tale", "hesa", "dugi", "davo", "tenu",
	"dame", "yopi", "sexa", "kabu", "huxe", "kula", "gewo", "meyu",
	"fanu", "xoya", "yepu", "dihi", "tivi", "livi", "xubi", "fujo",
	"yeve", "dila", "mezi", "yero", "mevo", "yobo", "saxi", "yaha",
	"sinu", "vexu", "sucu", "sexi", "lemo", "boko", "betu", "jaji",
	"toxi", "koce", "gone", "ziyi", "rohe", "nudo", "xoxa", "lido",
	"kani", "vuxo", "cugi", "tofe", "xave", "posi", "nijo", "vaha",
	"jumo", "yako", "faja", "suya", "vimu", "fafa", "guwi", "xezo",
	"keyo", "viwu", "zege", "bujo", "wupa", "jeyi", "coki", "pawo",
	"woru", "gori", "fogo", "damo", "gigu", "guru", "yuca", "nile",
	"vatu", "bedu", "zowe", "daye", "xawi", "duxa", "sire", "riyo",
	"rora", "lise", "tiru", "zike", "gixu", "yeha", "kera", "ceyo",
	"diza", "kupo", "zane", "bodo", "lohu", "yiva", "ripi", "fepi",
	"mavi", "seme", "pone", "baca", "zaxo", "laze", "gexe", "teyi",
	"laxu", "beyu", "vabu", "nija", "mevu", "yumo", "loxi", "lobo",
	"bude", "woji", "mago", "coge", "hima", "pice", "jepi", "xira",
	"yuni", "xafa", "yibu", "bida", "foda", "hobo", "fafi", "tume",
	"sibu", "zuyu", "roje", "tigu", "teve", "meya", "xeko", "himu",
	"rizu", "nimo", "nepo", "pule", "cofa", "zoto", "kana", "gada",
	"mega", "cede", "bohu", "jici", "fupu", "loco", "weca", "neno",
	"wage", "lewa", "zewu", "lote", "dedi", "nama", "voje", "foli",
	"gice", "ruzu", "taci", "zuta", "puya", "tepo", "huja", "sido",
	"deyi", "hizo", "cecu", "coho", "foru", "zoya", "toxe", "pogi",
	"bena", "jahe", "sipa", "guho", "tabe", "seye", "fuxe", "huro",
	"laho", "dege", "gumi", "jewo", "mane", "faza", "jiho", "yoga",
	"yova", "baga", "wica", "bosa", "buke", "cuci", "celu", "popu",
	"latu", "dupi", "fuwu", "gegi", "sesa", "zago", "hafu", "degu",
	"zepa", "kaya", "guve", "kici", "yibo", "kehu", "wimi", "siya",
	"neya", "roco", "jisu", "jaxa", "voto", "devi", "geni", "movi",
	"gali", "woca", "gizu", "hihi", "duci", "kuto", "yiri", "tebo",
	"mome", "luzo", "kaxa", "xoma", "kade", "lini", "yeda", "huhe",
	"yupi", "viji", "huku", "keki", "sabu", "feva", "gowa", "pitu",
	"bafo", "xexu", "vefu", "tahi", "kowu", "hizi", "leda", "kina",
	"zufa", "fete", "cake", "fiba", "kipu", "feyi", "dija", "fave",
	"saza", "bogu", "zote", "digu", "dibe", "yavi", "fisa", "goco",
	"toya", "pevi", "fuka", "paci", "cevi", "yuse", "xuri", "jodu",
	"wizi", "like", "huca", "boma", "wova", "zero", "fodo", "kumo",
	"buha", "hata", "tole", "biya", "tovi", "dubu", "zoki", "hika",
	"kuki", "zebo", "culu", "tede", "muli", "zepe", "cima", "yave",
	"vuji", "waku", "cisi", "muxe", "gijo", "begu", "boku", "puva",
	"jati", "zive", "japa", "xizo", "fida", "vani", "fase", "bere",
	"kubo", "vaja", "beyo", "xero", "hege", "dowe", "bebu", "vabo",
	"simu", "yicu", "xafo", "bilo", "cuku", "wuyi", "xuzi", "lulu",
	"xise", "leno", "nuka", "bacu", "labo", "yihi", "moro", "dixi",
	"cudu", "mofe", "woya", "sisu", "kipi", "nufi", "mifo", "wele",
	"luhe", "goda", "xiju", "fatu", "huge", "roga", "vabi", "yire",
	"siga", "kusi", "nihe", "kofu", "xutu", "xegi", "teda", "heke",
	"rese", "fono", "xeno", "mumi", "deji", "nitu", "guga", "cuyu",
	"coju", "deso", "vacu", "diga", "supa", "tude", "funi", "neko",
	"puve", "wajo", "biba", "gixe", "liro", "sako", "rame", "levu",
	"code", "dowa", "faki", "zake", "leho", "roka", "waya", "duyi",
	"lobu", "yopo", "bodu", "vojo", "soku", "foye", "wudi", "faye",
	"giwo", "zexa", "lado", "yowu", "rejo", "fofo", "gica", "fedo",
	"nuna", "vuja", "notu", "yoku", "gubo", "kebo", "luxi", "wosi",
	"vele", "tute", "zaho", "mofu", "gole", "gile", "pewi", "celo",
	"xexi", "vufo", "leri", "zado", "boba", "paha", "bima", "deri",
	"jobe", "xeto", "puji", "xuxa", "hiri", "sobo", "dahi", "jenu",
	"sudu", "duxo", "yole", "wono", "toze", "kewu", "zuda", "powo",
	"teti", "loyo", "pofo", "zoka", "zaku", "ture", "maru", "yudu",
	"guro", "xulo", "koxi", "toga", "yaya", "zare", "cihe", "gegu",
	"nihi", "hago", "tora", "nopi", "piso", "piye", "kuro", "guwa",
	"relo", "vuce", "nero", "wihe", "xibi", "labe", "fiwo", "mate",
	"waso", "xobi", "peta", "kopo", "ceri", "yuxa", "gana", "tozi",
	"zafi", "mabe", "yika", "faka", "bewo", "xihi", "difu", "nivi",
	"jexa", "roha", "reyu", "migi", "cepe", "pifa", "reti", "zala",
	"supi", "yoco", "saso", "wago", "lori", "xako", "sake", "bawe",
	"xini", "rici", "zugu", "bazu", "fazi", "niju", "pica", "guyu",
	"tubo", "jete", "cezo", "buvi", "gola", "zaga", "vogo", "dica",
	"hafa", "hofi", "mivi", "vome", "zede", "vuto", "japu", "yexa",
	"joxa", "navi", "lumu", "kalu", "nilo", "mifu", "raso", "cutu",
	"cale", "belu", "daca", "guha", "rebo", "vero", "bija", "cuwo",
	"sena", "roki", "casu", "line", "jono", "rusu", "coyo", "yoze",
	"foze", "jide", "gera", "xeya", "boli", "vosa", "gutu", "raba",
	"pato", "yamo", "sivi", "meba", "toyi", "jivu", "kido", "jega",
	"wapa", "ziru", "hene", "duho", "lipi", "diba", "yegu", "gipo",
	"ceka", "yeji", "gopi", "fipu", "wula", "tali", "hojo", "xemo",
	"sowo", "reki", "kazi", "kapu", "ciyo", "bule", "bili", "rema",
	"gune", "ratu", "luho", "taxa", "kolu", "tobi", "bohe", "befo",
	"vihi", "rexu", "yohe", "jofa", "mete", "xuhi", "jiru", "rava",
	"yiki", "powi", "rido", "yevo", "lace", "yipa", "wule", "june",
	"voki", "sana", "bahi", "menu", "poda", "wuxi", "beve", "kena",
	"wobu", "rave", "xasu", "nize", "nigu", "zega", "funa", "zaka",
	"curo", "fexi", "dapu", "sano", "fuzu", "poga", "maju", "yadi",
	"liko", "tuge", "wemi", "kela", "vuju", "duhe", "xile", "dobo",
	"loza", "zasa", "liru", "zese", "wace", "melo", "yoru", "yoxa",
	"nivu", "dumu", "riza", "fojo", "deka", "pahu", "mizo", "boya",
	"tufe", "sidi", "made", "pulu", "coka", "nipe", "zufi", "kugo",
	"mepi", "bofi", "reva", "lufa", "gode", "dale", "maxo", "xoro",
	"coru", "kiji", "rota", "jawa", "pene", "hage", "bagi", "duha",
	"tuhi", "vocu", "zina", "viga", "pipi", "caga", "wadu", "tito",
	"beba", "xezu", "xuma", "fisi", "suru", "besa", "xoju", "vove",
	"fita", "naku", "voco", "xuru", "puju", "kate", "deke", "sogo",
	"wava", "suma", "refa", "xasi", "mopa", "hopu", "gahi", "reso",
	"tifu", "mogu", "tovu", "xani", "jado", "gura", "kivi", "biti",
	"rega", "peke", "woxi", "rato", "kute", "mobo", "vixo", "mafo",
	"ruhu", "xixo", "peki", "vubu", "riju", "puzu", "donu", "gewu",
	"romo", "vufu", "leni", "tuve", "ramu", "nifu", "bitu", "yuti",
	"ruca", "yuma", "xebi", "vusi", "ruho", "lila", "gabu", "feze",
	"yele", "ciyu", "ruha", "jabu", "rehi", "gako", "gaye", "yinu",
	"furu", "pezu", "desu", "buja", "yasa", "kuni", "yace", "zuse",
	"zuru", "fefo", "yuva", "wole", "roto", "nove", "hogi", "varu",
	"tamu", "gufa", "rowe", "tifa", "xebo", "liju", "wozo", "dayu",
	"gina", "wapo", "luwi", "cage", "rama", "hudu", "bafu", "dasi",
	"lize", "buzu", "judi", "coya", "jaru", "meni", "pusi", "faga",
	"peye", "cude", "roci", "xori", "bofe", "dosi", "leko", "peme",
	"juwo", "tuyu", "cova", "hesu", "rare", "wasa", "juya", "kiku",
	"waxo", "ruma", "hira", "zuci", "taku", "pari", "tosi", "jafo",
	"luju", "figu", "xodo", "cupi", "fova", "redo", "cibi", "weso",
	"dola", "kazo", "nefo", "gexo", "bovi", "jinu", "fuso", "cema",
	"bawi", "xuzo", "zeyi", "nidu", "hero", "goyu", "puxe", "pacu",
	"fapo", "wumo", "liku", "koga", "duwo", "mere", "lere", "peri",
	"loge", "dewe", "yutu", "fopu", "tula", "xicu", "zuxi", "sewo",
	"zumi", "cebi", "kixu", "hogu", "fano", "ciro", "gaje", "jalo",
	"sazo", "kona", "kaca", "rira", "neyo", "leja", "navo", "wedo",
	"zudu", "zogi", "xucu", "zada", "suzu", "wade", "cisu", "rori",
	"vufi", "wore", "tinu", "wiji", "libu", "voni", "saje", "xosi",
	"gije", "kovo", "fona", "tafe", "yata", "jeru", "fide", "jito",
	"lupe", "yije", "wubi", "rojo", "yeju", "suzi", "rera", "yefu",
	"mano", "duta", "wuxo", "xeta", "xune", "caha", "baba", "zira",
	"xevu", "peju", "gepe", "zici", "dafu", "zene", "zemi", "nado",
	"negi", "zeyo", "vahe", "zojo", "xunu", "copu", "tusi", "yacu",
	"hasi", "zito", "heno", "buru", "daco", "xacu", "wifo", "pesu",
	"duko", "rimu", "vuzo", "limi", "cone", "kacu", "wevi", "vevu",
	"lubo", "xipa", "mefi", "hoya", "miti", "naye", "jiyu", "gupa",
	"feyo", "woto", "colu", "kaha", "jixo", "yike", "fiko", "zime",
	"sazu", "liso", "muxa", "yoje", "gidi", "sesi", "hila", "samu",
	"geyo", "lova", "cola", "koge", "coxi", "modi", "pula", "yeho",
	"kelo", "dujo", "neli", "sufa", "xayi", "zeba", "pufi", "juki",
	"sure", "sasa", "kefu", "nije", "cimo", "mode", "ducu", "pobo",
	"hewe", "wixe", "gozo", "siju", "newe", "pelo", "suca", "xawe",
	"tego", "zavi", "gofa", "penu", "pino", "rezu", "sabe", "niru",
	"xuya", "veta", "rocu", "bobe", "yalu", "teja", "lufu", "xapo",
	"texe", "saba", "fajo", "zedo", "safa", "honu", "jume", "para",
	"keha", "vawe", "cogo", "beli", "miji", "lale", "kibe", "jabo",
	"rafi", "pivo", "gife", "puge", "tanu", "xabo", "wito", "civo",
	"hoja", "vuya", "koxu", "huke", "kati", "roho", "rafa", "faya",
	"yozi", "nuxu", "vaza", "sude", "riga", "goxa", "kitu", "xuyo",
	"vowe", "yuba", "mala", "node", "wocu", "vewe", "wixo", "kisu",
	"caco", "wisu", "nopo", "vecu", "wegi", "tegi", "remi", "raca",
	"fuce", "dava", "koja", "veja", "loda", "loxe", "jefe", "sozu",
	"weya", "defo", "kedu", "buma", "bixe", "wima", "sira", "luci",
	"welu", "tera", "liji", "duya", "hiza", "yisu", "cidu", "husu",
	"vede", "yavu", "raki", "lune", "kuru", "nuli", "gace", "jujo",
	"peja", "yoso", "geye", "none", "puro", "benu", "kura", "vudo",
	"muco", "zaje", "kisi", "cara", "putu", "pexo", "jezo", "lixa",
	"sexe", "dana", "pogo", "fewe", "tedu", "simi", "vide", "pehi",
	"geca", "wuni", "cuzu", "bije", "buli", "zapu", "bile", "hilu",
	"haxu", "ceje", "vute", "nafe", "hebo", "ruta", "coxa", "tami",
	"zeva", "meta", "pidu", "jeni", "bubu", "bawa", "foxa", "xodu",
	"ruzo", "ceru", "tago", "file", "ride", "zine", "yoko", "fexo",
	"xexo", "nari", "bezi", "lede", "kota", "hofo", "dizo", "judo",
	"siji", "jedu", "yixa", "gufu", "gudu", "mufo", "buwi", "laya",
	"gubu", "giyu", "numa", "kigo", "vebe", "xida", "feja", "xeho",
	"dupe", "yeki", "yeyi", "sevo", "buve", "jewi", "xeki", "segu",
	"memi", "webu", "mise", "kope", "fula", "gozu", "duge", "saku",
	"gupo", "hije", "muge", "gojo", "cawu", "tite", "zefi", "fiji",
	"fomi", "wanu", "denu", "nika", "nenu", "hala", "zame", "garu",
	"yeti", "nuca", "losi", "wuju", "sova", "pabo", "vuva", "jaza",
	"deta", "vomu", "kuco", "zepu", "kajo", "logu", "fawe", "dure",
	"guza", "boxo", "muxu", "leyo", "wawi", "luko", "komu", "gora",
	"wibi", "ciwe", "xapu", "bihi", "vuhi", "sive", "zora", "jowe",
	"depu", "fega", "femi", "kada", "texa", "fobu", "desi", "buxa",
	"peci", "livo", "libi", "ciba", "pojo", "rusi", "yuyu", "pisi",
	"nabo", "vija", "hine", "reto", "tace", "poni", "nimu", "wipe",
	"meha", "cixa", "zoni", "kemi", "heti", "vijo", "beze", "coja",
	"bexo", "pihi", "wuja", "fugu", "nigi", "gabo", "hoka", "bopa",
	"xana", "yece", "jopu", "gefu", "lufo", "heci", "codi", "bine",
	"pita", "mapo", "zaha", "loli", "dudu", "veda", "koli", "lumi",
	"meci", "nani", "zefe", "neva", "wuji", "pupa", "tame", "cade",
	"dabi", "neso", "nugo", "bupo", "nafo", "zeri", "vifu", "zoso",
	"subi", "kinu", "minu", "kocu", "xuka", "howi", "pife", "ximu",
	"huza", "mewu", "veye", "mita", "vino", "xecu", "yira", "zava",
	"maki", "hegu", "huwa", "hewi", "nebe", "fosa", "roge", "rano",
	"pede", "yara", "duji", "vula", "ziye", "jawe", "jani", "neju",
	"detu", "kanu", "lojo", "fixo", "hidi", "vexa", "hice", "giso",}
